// Content commands list site resources from the API.
//
// Each resource command fetches through the content pipeline, so a
// backend failure prints the built-in fallback data instead of erroring.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nepalailab/labsite/internal/content"
	"github.com/nepalailab/labsite/pkg/types"
)

// newListCmd builds a command that fetches one resource collection and
// prints it, either as JSON or one line per entry.
func newListCmd[T any](use, short string, fetch func(*content.Pipeline, context.Context) []T, line func(T) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := fetch(newPipeline(), cmd.Context())
			return printResult(cmd, items, func() {
				for _, item := range items {
					fmt.Fprintln(cmd.OutOrStdout(), line(item))
				}
			})
		},
	}
}

var carouselCmd = newListCmd("carousel", "List active carousel slides",
	(*content.Pipeline).Carousel,
	func(s types.Slide) string {
		return fmt.Sprintf("%d\t%s\t%s", s.ID, s.Title, s.LinkURL)
	})

var productsCmd = newListCmd("products", "List products",
	(*content.Pipeline).Products,
	func(p types.Product) string {
		return fmt.Sprintf("%d\t%s\t%s", p.ID, p.Name, strings.Join(p.Technologies, ", "))
	})

var servicesCmd = newListCmd("services", "List services",
	(*content.Pipeline).Services,
	func(s types.Service) string {
		return fmt.Sprintf("%d\t%s\t[%s]", s.ID, s.Title, s.Icon)
	})

var teamCmd = newListCmd("team", "List team members",
	(*content.Pipeline).Team,
	func(m types.TeamMember) string {
		return fmt.Sprintf("%d\t%s\t%s", m.ID, m.Name, m.Role)
	})

var testimonialsCmd = newListCmd("testimonials", "List testimonials",
	(*content.Pipeline).Testimonials,
	func(t types.Testimonial) string {
		return fmt.Sprintf("%d\t%s (%s)\t%s", t.ID, t.Name, t.Role, t.Feedback)
	})

var techCmd = newListCmd("tech", "List the technology stack",
	(*content.Pipeline).TechStack,
	func(e types.TechEntry) string {
		return fmt.Sprintf("%d\t%s\t%s", e.ID, e.Category, e.Name)
	})

var partnersCmd = newListCmd("partners", "List partner organizations",
	(*content.Pipeline).Partners,
	func(p types.Partner) string {
		return fmt.Sprintf("%d\t%s\t%s", p.ID, p.Name, p.WebsiteURL)
	})

var insightsCmd = newListCmd("insights", "List research insights",
	(*content.Pipeline).Insights,
	func(i types.Insight) string {
		return fmt.Sprintf("%d\t%s\t%s\t%s", i.ID, i.Date, i.Category, i.Title)
	})
