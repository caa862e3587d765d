package content

// Stat is a headline number on the home page.
type Stat struct {
	Number   string `yaml:"number" json:"number"`
	Label    string `yaml:"label" json:"label"`
	Icon     string `yaml:"icon" json:"icon"`
	Tooltip  string `yaml:"tooltip,omitempty" json:"tooltip,omitempty"`
	Progress int    `yaml:"progress,omitempty" json:"progress,omitempty"`
}

// Feature is a titled card with an icon.
type Feature struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image,omitempty" json:"image,omitempty"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
}

// Verdict grades one cell of the OS comparison.
type Verdict string

const (
	VerdictGood    Verdict = "good"
	VerdictPartial Verdict = "partial"
	VerdictBad     Verdict = "bad"
)

// Icon is the glyph shown next to a verdict.
func (v Verdict) Icon() string {
	switch v {
	case VerdictGood:
		return "✅"
	case VerdictPartial:
		return "⚠️"
	}
	return "❌"
}

// Cell is one OS's entry in a comparison row.
type Cell struct {
	Text    string  `yaml:"text" json:"text"`
	Verdict Verdict `yaml:"verdict" json:"verdict"`
}

// ComparisonRow compares Ubuntu, macOS and Windows on one feature.
type ComparisonRow struct {
	Feature string `yaml:"feature" json:"feature"`
	Ubuntu  Cell   `yaml:"ubuntu" json:"ubuntu"`
	Mac     Cell   `yaml:"mac" json:"mac"`
	Windows Cell   `yaml:"windows" json:"windows"`
}

// FAQ is one question in the accordion.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
	Icon     string `yaml:"icon" json:"icon"`
}

// Step is one installation step.
type Step struct {
	Number      int    `yaml:"number" json:"number"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image" json:"image"`
	Action      string `yaml:"action" json:"action"`
	Tip         string `yaml:"tip" json:"tip"`
}

// Method is a way of installing Ubuntu.
type Method struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Pros        []string `yaml:"pros" json:"pros"`
	Cons        []string `yaml:"cons" json:"cons"`
	BestFor     string   `yaml:"best_for" json:"best_for"`
	Recommended bool     `yaml:"recommended,omitempty" json:"recommended,omitempty"`
}

// Requirement is a single hardware line.
type Requirement struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Requirements lists minimum and recommended hardware.
type Requirements struct {
	Minimum     []Requirement `yaml:"minimum" json:"minimum"`
	Recommended []Requirement `yaml:"recommended" json:"recommended"`
}

// Installation is the content of the installation guide.
type Installation struct {
	Steps        []Step       `yaml:"steps" json:"steps"`
	Methods      []Method     `yaml:"methods" json:"methods"`
	Requirements Requirements `yaml:"requirements" json:"requirements"`
	PostInstall  string       `yaml:"post_install" json:"post_install"`
}

// SoftwareApp is an application listed in the software catalog.
type SoftwareApp struct {
	Name              string `yaml:"name" json:"name"`
	Description       string `yaml:"description" json:"description"`
	Icon              string `yaml:"icon" json:"icon"`
	Free              bool   `yaml:"free,omitempty" json:"free"`
	PreInstalled      bool   `yaml:"pre_installed,omitempty" json:"pre_installed"`
	WindowsEquivalent string `yaml:"windows_equivalent" json:"windows_equivalent"`
}

// Category groups software apps.
type Category struct {
	ID   string        `yaml:"id" json:"id"`
	Name string        `yaml:"name" json:"name"`
	Icon string        `yaml:"icon" json:"icon"`
	Apps []SoftwareApp `yaml:"apps" json:"apps"`
}

// Software is the software catalog.
type Software struct {
	DefaultCategory string     `yaml:"default_category" json:"default_category"`
	Categories      []Category `yaml:"categories" json:"categories"`
	InstallWays     []Feature  `yaml:"install_ways" json:"install_ways"`
}

// Channel is a community support channel.
type Channel struct {
	Title        string `yaml:"title" json:"title"`
	Description  string `yaml:"description" json:"description"`
	Icon         string `yaml:"icon" json:"icon"`
	Link         string `yaml:"link" json:"link"`
	Users        string `yaml:"users" json:"users"`
	ResponseTime string `yaml:"response_time" json:"response_time"`
}

// Contribution is a way to contribute to Ubuntu.
type Contribution struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Difficulty  string `yaml:"difficulty" json:"difficulty"`
	Commitment  string `yaml:"commitment" json:"commitment"`
}

// Event is a recurring community event.
type Event struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Date        string `yaml:"date" json:"date"`
	Location    string `yaml:"location" json:"location"`
}

// Community is the content of the community page.
type Community struct {
	Stats         []Stat         `yaml:"stats" json:"stats"`
	Channels      []Channel      `yaml:"channels" json:"channels"`
	Contributions []Contribution `yaml:"contributions" json:"contributions"`
	Events        []Event        `yaml:"events" json:"events"`
	Values        []Feature      `yaml:"values" json:"values"`
}

// Reason is one advantage on the why-ubuntu page.
type Reason struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
	Details     []string `yaml:"details" json:"details"`
}

// Side is one half of a head-to-head comparison.
type Side struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// HeadToHead contrasts Ubuntu with the other systems on one category.
type HeadToHead struct {
	Category string `yaml:"category" json:"category"`
	Ubuntu   Side   `yaml:"ubuntu" json:"ubuntu"`
	Others   Side   `yaml:"others" json:"others"`
}

// Myth pairs a misconception with the reality.
type Myth struct {
	Myth        string `yaml:"myth" json:"myth"`
	Reality     string `yaml:"reality" json:"reality"`
	Explanation string `yaml:"explanation" json:"explanation"`
}

// Why is the content of the why-ubuntu page.
type Why struct {
	Reasons     []Reason     `yaml:"reasons" json:"reasons"`
	Comparisons []HeadToHead `yaml:"comparisons" json:"comparisons"`
	Myths       []Myth       `yaml:"myths" json:"myths"`
	Adopters    []Feature    `yaml:"adopters" json:"adopters"`
}
