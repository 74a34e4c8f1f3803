package flashdeck_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/flashdeck"
)

// Example_basic opens a collection, adds two cards and lists one category.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "flashdeck-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := flashdeck.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	if _, err := store.Add(ctx, "Capital of France?", "Paris", flashdeck.CategoryStudy, []string{"geo"}); err != nil {
		log.Fatal(err)
	}
	if _, err := store.Add(ctx, "Standup time?", "9:30", flashdeck.CategoryWork, nil); err != nil {
		log.Fatal(err)
	}

	for _, e := range store.Filter(flashdeck.CategoryStudy) {
		fmt.Printf("%s -> %s %v\n", e.Front, e.Back, e.Tags)
	}
	// Output:
	// Capital of France? -> Paris [geo]
}

// Example_draft builds an entry field by field, the way a form would.
func Example_draft() {
	store, err := flashdeck.New("", flashdeck.WithAdapter("memory"))
	if err != nil {
		log.Fatal(err)
	}

	d := flashdeck.NewDraft()
	d.Front = "2+2"
	d.Back = "4"
	d.Category = flashdeck.CategoryStudy
	d.AddTag("math")
	d.AddTag("math")

	ok, err := d.Submit(context.Background(), store)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ok, store.Len(), store.Entries()[0].Tags, d.Front == "")
	// Output:
	// true 1 [math] true
}
