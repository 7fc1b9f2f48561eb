package locate

import (
	"fmt"
	"strings"

	"globex/internal/types"
)

// DefaultPrompt is sent when a caller supplies no prompt.
const DefaultPrompt = "Find location"

// BuildPrompt asks the model for the most likely location an article is
// about, in the reply format ParseReply understands.
func BuildPrompt(item types.Item, countryHint string) string {
	var b strings.Builder

	b.WriteString("Identify the single most relevant geographic location for this news article.\n")
	if countryHint != "" {
		fmt.Fprintf(&b, "The article was published for country code %q; prefer a location there when the text is ambiguous.\n", strings.ToUpper(countryHint))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Title: %s\n", strings.TrimSpace(item.Title))
	if d := strings.TrimSpace(item.Description); d != "" {
		fmt.Fprintf(&b, "Description: %s\n", d)
	}
	if item.SourceName != "" {
		fmt.Fprintf(&b, "Source: %s\n", item.SourceName)
	}

	b.WriteString(`
Answer in exactly this format and nothing else:
Location: <place name, country>
Latitude: <decimal degrees>
Longitude: <decimal degrees>
Reasoning: <one sentence>`)

	return b.String()
}
