package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/switchubuntu/internal/analytics"
	"github.com/ziadkadry99/switchubuntu/internal/content"
)

// handleListSoftware lists one category, or search results across all.
func (s *Server) handleListSoftware(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if query := strings.TrimSpace(request.GetString("query", "")); query != "" {
		apps := s.catalog.SearchSoftware(query)
		if len(apps) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No applications match %q.", query)), nil
		}
		return mcp.NewToolResultText(formatApps(fmt.Sprintf("Applications matching %q", query), apps)), nil
	}

	cat := s.catalog.SoftwareCategory(request.GetString("category", ""))
	return mcp.NewToolResultText(formatApps(cat.Name, cat.Apps)), nil
}

// handleGetFAQ returns every FAQ, or one by index.
func (s *Server) handleGetFAQ(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	faqs := s.catalog.FAQs
	index := request.GetInt("index", -1)
	if index >= len(faqs) || index < -1 {
		return mcp.NewToolResultError(fmt.Sprintf("index out of range: %d (have %d questions)", index, len(faqs))), nil
	}
	if index >= 0 {
		faqs = faqs[index : index+1]
	}

	var sb strings.Builder
	for i, f := range faqs {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Q: %s\nA: %s\n", f.Question, f.Answer)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleCompareOS renders the comparison table as text.
func (s *Server) handleCompareOS(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feature := strings.ToLower(strings.TrimSpace(request.GetString("feature", "")))

	var rows []content.ComparisonRow
	for _, r := range s.catalog.Comparison {
		if feature == "" || strings.Contains(strings.ToLower(r.Feature), feature) {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No comparison rows match %q.", feature)), nil
	}

	var sb strings.Builder
	sb.WriteString("| Feature | Ubuntu | macOS | Windows |\n|---|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "| %s | %s %s | %s %s | %s %s |\n",
			r.Feature,
			r.Ubuntu.Verdict.Icon(), r.Ubuntu.Text,
			r.Mac.Verdict.Icon(), r.Mac.Text,
			r.Windows.Verdict.Icon(), r.Windows.Text,
		)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleInstallationSteps returns the install guide as text.
func (s *Server) handleInstallationSteps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inst := s.catalog.Installation

	var sb strings.Builder
	sb.WriteString("# Installing Ubuntu\n")
	for _, st := range inst.Steps {
		fmt.Fprintf(&sb, "\n%d. %s\n   %s\n", st.Number, st.Title, st.Description)
		if st.Tip != "" {
			fmt.Fprintf(&sb, "   Tip: %s\n", st.Tip)
		}
	}

	sb.WriteString("\n## System requirements\n")
	writeRequirements(&sb, "Minimum", inst.Requirements.Minimum)
	writeRequirements(&sb, "Recommended", inst.Requirements.Recommended)

	if request.GetBool("include_methods", false) {
		sb.WriteString("\n## Installation methods\n")
		for _, m := range inst.Methods {
			title := m.Title
			if m.Recommended {
				title += " (recommended)"
			}
			fmt.Fprintf(&sb, "\n### %s\n%s\n", title, m.Description)
			for _, p := range m.Pros {
				fmt.Fprintf(&sb, "+ %s\n", p)
			}
			for _, c := range m.Cons {
				fmt.Fprintf(&sb, "- %s\n", c)
			}
		}
	}

	if inst.PostInstall != "" {
		sb.WriteString("\n")
		sb.WriteString(inst.PostInstall)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleEventCounts reports analytics counts per kind.
func (s *Server) handleEventCounts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var since *time.Time
	if hours := request.GetInt("hours", 0); hours > 0 {
		t := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
		since = &t
	}

	counts, err := s.events.Counts(ctx, since)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("counting events failed: %v", err)), nil
	}

	var sb strings.Builder
	for _, k := range analytics.Kinds {
		fmt.Fprintf(&sb, "%s: %d\n", k, counts[k])
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatApps(title string, apps []content.SoftwareApp) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d):\n", title, len(apps))
	for _, a := range apps {
		var tags []string
		if a.Free {
			tags = append(tags, "free")
		}
		if a.PreInstalled {
			tags = append(tags, "pre-installed")
		}
		fmt.Fprintf(&sb, "\n- %s: %s\n", a.Name, a.Description)
		if len(tags) > 0 {
			fmt.Fprintf(&sb, "  [%s]\n", strings.Join(tags, ", "))
		}
		if a.WindowsEquivalent != "" {
			fmt.Fprintf(&sb, "  Replaces: %s\n", a.WindowsEquivalent)
		}
	}
	return sb.String()
}

func writeRequirements(sb *strings.Builder, label string, reqs []content.Requirement) {
	fmt.Fprintf(sb, "\n%s:\n", label)
	for _, r := range reqs {
		fmt.Fprintf(sb, "- %s: %s\n", r.Name, r.Value)
	}
}
