package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/render"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the post content root")
		extension  = flag.String("extension", ".md", "Recognized document extension")
		postSlug   = flag.String("slug", "", "Slug of the post to preview")
		asText     = flag.Bool("text", false, "Print the extracted plain text instead of the node tree")
	)

	flag.Parse()

	if *postSlug == "" {
		log.Fatalf("--slug is required")
	}

	cfg := blog.DefaultConfig()
	cfg.Content.Dir = *contentDir
	cfg.Content.Extension = *extension

	module, err := blog.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	post, err := module.Posts().GetPostBySlug(context.Background(), *postSlug)
	if err != nil {
		log.Fatalf("load post: %v", err)
	}

	meta, err := json.MarshalIndent(post.FrontMatter, "", "  ")
	if err != nil {
		log.Fatalf("encode frontmatter: %v", err)
	}
	fmt.Fprintf(os.Stdout, "Slug: %s\nFrontmatter:\n%s\n\n", *postSlug, meta)

	if *asText {
		fmt.Fprintln(os.Stdout, render.ExtractText(post.Content))
		return
	}
	fmt.Fprint(os.Stdout, render.Dump(post.Content))
}
