package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"

	"spellsheet/internal/adapters/tui/styles"
	"spellsheet/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderTabs renders the panel tabs with active highlighted
func RenderTabs(active Panel) string {
	tabs := make([]string, 0, len(Panels))
	for i, p := range Panels {
		label := fmt.Sprintf("%d %s", i+1, p)
		if p == active {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}
	return strings.Join(tabs, "")
}

// wordColumn is the display width of the word column in list rows
const wordColumn = 24

// RenderWordRow renders a library word with its usage, marking staged words
func RenderWordRow(w domain.Word, selected, staged bool) string {
	marker := "  "
	if staged {
		marker = "+ "
	}
	usage := "never used"
	if w.UsageCount > 0 {
		usage = fmt.Sprintf("used %d", w.UsageCount)
	}

	// Pad by display width so wide characters keep the column aligned
	text := runewidth.FillRight(runewidth.Truncate(w.Text, wordColumn, "…"), wordColumn)
	if selected {
		return styles.RowSelected.Render(marker + text + " " + usage)
	}

	style := styles.UsageStyle(w.UsageCount)
	if staged {
		style = styles.RowStaged
	}
	return marker + style.Render(text) + " " + styles.Usage.Render(usage)
}

// RenderPageIndicator renders "Page x/y" when the list spans several pages
func RenderPageIndicator(p *Paginator) string {
	if p.TotalPages() <= 1 {
		return ""
	}
	return styles.MutedText.Render(fmt.Sprintf("Page %d/%d", p.CurrentPage(), p.TotalPages()))
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(styles.MutedText.Render(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString("\n")
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString("\n")
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// String returns the built view string wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
