package tui

type constError string

func (e constError) Error() string { return string(e) }

// ErrNoLoader is reported when a dashboard is started without a LoadFunc.
const ErrNoLoader constError = "dashboard has no dataset loader"
