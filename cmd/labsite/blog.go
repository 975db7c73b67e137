// Blog commands list and show published posts.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nepalailab/labsite/internal/content"
)

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Browse blog posts",
}

var blogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published blog posts",
	Args:  cobra.NoArgs,
	RunE:  runBlogList,
}

var blogShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one blog post by slug",
	Long: `Show fetches a single published post by its slug and prints the
full content.

Example:
  labsite blog show getting-started-with-nlp
  labsite blog show getting-started-with-nlp --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBlogShow,
}

func init() {
	blogCmd.AddCommand(blogListCmd)
	blogCmd.AddCommand(blogShowCmd)
}

func runBlogList(cmd *cobra.Command, args []string) error {
	posts := newPipeline().BlogPosts(cmd.Context())
	return printResult(cmd, posts, func() {
		for _, post := range posts {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", post.Slug, post.Date, post.ReadTime, post.Title)
		}
	})
}

func runBlogShow(cmd *cobra.Command, args []string) error {
	slug := args[0]

	post, err := newPipeline().BlogPostBySlug(cmd.Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "no post found for slug %q\n", slug)
			return nil
		}
		return fmt.Errorf("fetch post: %w", err)
	}

	return printResult(cmd, post, func() {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, post.Title)
		fmt.Fprintf(out, "%s | %s | %s | %s\n", post.Author, post.Date, post.Category, post.ReadTime)
		fmt.Fprintln(out)
		if post.Content != "" {
			fmt.Fprintln(out, post.Content)
		} else {
			fmt.Fprintln(out, post.Excerpt)
		}
	})
}
