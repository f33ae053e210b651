package curator

import (
	"context"
	"fmt"
	"log/slog"

	"gaizette/internal/types"
	"gaizette/internal/utils"
)

const blurbContentMax = 4000

const blurbPrompt = `You are a professional news editor. Provide a single, information-dense sentence that summarizes the main event. Avoid fluff like "This article is about."

Article content:
"""
%s
"""

Short summary:`

// WriteBlurbs fetches each featured article's page, extracts the
// readable text and asks the model for a one-sentence editor's
// summary. Everything here is best-effort: a failed blurb leaves the
// article with its feed summary only.
func (c *Curator) WriteBlurbs(ctx context.Context, featured []*types.Article) {
	for _, a := range featured {
		content, err := utils.GetArticleText(ctx, a.Link)
		if err != nil {
			slog.Warn("skipping blurb, couldn't get article text", "title", a.Title, "error", err)
			continue
		}
		if len(content) > blurbContentMax {
			content = content[:blurbContentMax]
		}

		blurb, err := c.llm.Generate(ctx, fmt.Sprintf(blurbPrompt, content))
		if err != nil {
			slog.Warn("skipping blurb, generation failed", "title", a.Title, "error", err)
			continue
		}

		a.Blurb = blurb
	}
}
