package main

import (
	"encoding/json"
	"fmt"

	bookmark "github.com/Lawliet-3/mini-bookmark"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	result, err := deps.Pipeline.Run(deps.Ctx, bookmark.FetchRequest{URL: c.URL})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmark.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	switch result.Type {
	case bookmark.PageTypeList:
		fmt.Fprintf(deps.Stdout, "%s (list, %d links)\n", result.List.Title, len(result.List.Links))
		for _, link := range result.List.Links {
			fmt.Fprintf(deps.Stdout, "  %s\n    %s\n", link.Title, link.URL)
		}
	default:
		article := result.Article
		fmt.Fprintf(deps.Stdout, "%s (article)\n", article.Title)
		if article.Metadata.Description != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", article.Metadata.Description)
		}
		markdown, err := deps.Converter.Convert(article.MainContent)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bookmark.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, markdown)
	}

	return nil
}
