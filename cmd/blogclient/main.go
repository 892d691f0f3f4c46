// SPDX-License-Identifier: AGPL-3.0-only
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/fluffyriot/globeblog/internal/webclient"
	"github.com/rs/zerolog/log"
)

// Terminal front end for the blog API: loads a post the same way the page
// does and prints what the surface would display.
func main() {
	base := flag.String("base", "http://localhost:8080", "blog API base address")
	id := flag.Int64("id", 0, "post id to load (0 loads the snippet list only)")
	lang := flag.String("lang", "en", "content language: en, pl or pt")
	pivot := flag.Int("pivot", 0, "stack position of the chosen post")
	flag.Parse()

	client := webclient.NewClient(60 * time.Second)
	surface := webclient.NewMemorySurface()
	helper := webclient.NewPostHelper(client, *base, surface, webclient.LogSink{})

	ctx := context.Background()

	if *id == 0 {
		snippets, err := helper.GetPosts(ctx, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("fetching snippets failed")
		}
		for _, s := range snippets {
			fmt.Printf("%d\t%s\t%s\t%s\n", s.ID, s.DateString, s.Category, s.Title)
		}
		return
	}

	if err := helper.LoadPost(ctx, *id, *lang, *pivot); err != nil {
		log.Fatal().Err(err).Msg("loading post failed")
	}

	fmt.Println("# " + surface.Title())
	fmt.Println()
	fmt.Println(surface.Content())
	fmt.Println()
	fmt.Println(surface.Stack())
}
