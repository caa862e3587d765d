package desktop

// Frame is a window's fixed position and size in pixels, relative to the
// desktop area. Windows may overlap; there is no stacking order.
type Frame struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Panel selects which mock content a window renders.
type Panel string

const (
	PanelFiles    Panel = "files"
	PanelTerminal Panel = "terminal"
	PanelBrowser  Panel = "browser"
	PanelGeneric  Panel = "generic"
)

// Window is an open application with its frame.
type Window struct {
	App   App   `json:"app"`
	Frame Frame `json:"frame"`
	Panel Panel `json:"panel"`
}

var frames = map[string]Frame{
	"files":       {X: 80, Y: 80, Width: 384, Height: 320},
	"terminal":    {X: 128, Y: 128, Width: 384, Height: 256},
	"firefox":     {X: 160, Y: 96, Width: 384, Height: 320},
	"libreoffice": {X: 200, Y: 112, Width: 384, Height: 288},
	"calculator":  {X: 240, Y: 144, Width: 288, Height: 320},
	"settings":    {X: 280, Y: 176, Width: 384, Height: 288},
	"store":       {X: 320, Y: 64, Width: 384, Height: 288},
	"music":       {X: 360, Y: 208, Width: 320, Height: 240},
}

var panels = map[string]Panel{
	"files":    PanelFiles,
	"terminal": PanelTerminal,
	"firefox":  PanelBrowser,
}

// FrameFor returns the fixed frame of an application.
func FrameFor(id string) Frame {
	return frames[id]
}

func windowFor(app App) Window {
	p, ok := panels[app.ID]
	if !ok {
		p = PanelGeneric
	}
	return Window{App: app, Frame: frames[app.ID], Panel: p}
}

// WindowFor returns the window an application opens into, whether or not
// it is currently open.
func WindowFor(id string) (Window, bool) {
	app, ok := Lookup(id)
	if !ok {
		return Window{}, false
	}
	return windowFor(app), true
}
