package desktop

// Prompt is the shell prompt shown in the mock terminal.
const Prompt = "welcome@ubuntu:~$ "

// BrowserURL is shown in the mock Firefox address bar.
const BrowserURL = "https://ubuntu.com"

// TerminalLine is one row of canned terminal output.
type TerminalLine struct {
	Prompt string `json:"prompt,omitempty"`
	Output string `json:"output,omitempty"`
}

var terminalLines = []TerminalLine{
	{Prompt: Prompt},
	{Output: "Welcome to Ubuntu 24.04 LTS!"},
	{Output: `Type "help" to see available commands.`},
	{Prompt: Prompt},
}

// TerminalLines returns the canned terminal transcript.
func TerminalLines() []TerminalLine {
	out := make([]TerminalLine, len(terminalLines))
	copy(out, terminalLines)
	return out
}

// Folder is an entry in the mock file manager.
type Folder struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var folders = []Folder{
	{Name: "Documents", Icon: "📁"},
	{Name: "Downloads", Icon: "📁"},
	{Name: "Pictures", Icon: "📁"},
	{Name: "Music", Icon: "🎵"},
	{Name: "Videos", Icon: "🎬"},
}

// Folders returns the file manager listing.
func Folders() []Folder {
	out := make([]Folder, len(folders))
	copy(out, folders)
	return out
}
