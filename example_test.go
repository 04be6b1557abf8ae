package autolink_test

import (
	"fmt"
	"os"

	"pkt.systems/autolink"
)

func ExampleExtractor_Links() {
	ex, err := autolink.New()
	if err != nil {
		panic(err)
	}
	input := "wow, so example: http://test.com, (www.example.org) or foo@example.com."
	for link := range ex.Links(input) {
		fmt.Println(link.Kind(), link.Text(input))
	}
	// Output:
	// url http://test.com
	// www www.example.org
	// email foo@example.com
}

func ExampleNewBuilder() {
	ex, err := autolink.NewBuilder().
		WithScanner('@', autolink.EmailScanner{DomainMustHaveDot: false}).
		Build()
	if err != nil {
		panic(err)
	}
	input := "root@localhost and www.example.org"
	fmt.Println(ex.Extract(input))
	// Output:
	// [email[0:14]]
}

func ExampleRender() {
	err := autolink.Render(autolink.RenderRequest{
		Input:    "Docs at www.example.org & support@example.org",
		Writer:   os.Stdout,
		Renderer: autolink.HTMLRenderer{Rel: "nofollow"},
	})
	if err != nil {
		panic(err)
	}
	// Output:
	// Docs at <a href="http://www.example.org" rel="nofollow">www.example.org</a> &amp; <a href="mailto:support@example.org" rel="nofollow">support@example.org</a>
}
