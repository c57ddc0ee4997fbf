package engine

import (
	"encoding/json"
	"fmt"

	"github.com/rshade/lithiumscope/internal/supplychain"
)

// Stage is a column of the supply-chain flow diagram.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Stage int

const (
	// StageMining is extraction.
	StageMining Stage = iota
	// StageProcessing is refining and conversion.
	StageProcessing
	// StageBattery is cell manufacturing.
	StageBattery
)

// String returns the label for a Stage.
func (s Stage) String() string {
	switch s {
	case StageMining:
		return "mining"
	case StageProcessing:
		return "processing"
	case StageBattery:
		return "battery"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// MarshalJSON implements json.Marshaler to output Stage as string.
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Stage from string.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing stage: %w", err)
	}
	switch str {
	case "mining":
		*s = StageMining
	case "processing":
		*s = StageProcessing
	case "battery":
		*s = StageBattery
	default:
		return fmt.Errorf("%w: stage %q", ErrUnknownEnum, str)
	}
	return nil
}

// FlowNode is one operational entity in the flow diagram.
type FlowNode struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Stage       Stage   `json:"stage"`
	Capacity    float64 `json:"capacity"`
	Utilization float64 `json:"utilization"`
	Location    string  `json:"location"`
}

// FlowLink connects two nodes. No links are inferred from the dataset, so
// this type is only ever seen as an empty list.
type FlowLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// FlowGraph is the node projection of the supply chain.
type FlowGraph struct {
	Nodes []FlowNode `json:"nodes"`
	Links []FlowLink `json:"links"`
}

// SupplyChainFlow returns operational entities as flow nodes in mining,
// processing, battery order. Links is always empty and never nil.
func SupplyChainFlow(src Source) FlowGraph {
	g := FlowGraph{
		Nodes: []FlowNode{},
		Links: []FlowLink{},
	}

	for _, m := range src.MiningOperations() {
		if m.Status.IsOperational() {
			g.Nodes = append(g.Nodes, flowNode(m.Site, StageMining, m.NameplateCapacity.Value))
		}
	}
	for _, p := range src.ProcessingFacilities() {
		if p.Status.IsOperational() {
			g.Nodes = append(g.Nodes, flowNode(p.Site, StageProcessing, p.OutputProduct.Capacity))
		}
	}
	for _, b := range src.BatteryManufacturing() {
		if b.Status.IsOperational() {
			g.Nodes = append(g.Nodes, flowNode(b.Site, StageBattery, b.AnnualCapacity.Value))
		}
	}

	return g
}

func flowNode(s supplychain.Site, stage Stage, capacity float64) FlowNode {
	util := 0.0
	if s.UtilizationRate != nil {
		util = *s.UtilizationRate
	}
	return FlowNode{
		ID:          s.ID,
		Name:        s.Name,
		Stage:       stage,
		Capacity:    capacity,
		Utilization: util,
		Location:    s.CountryName,
	}
}
