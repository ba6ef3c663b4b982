package main

import (
	"flag"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

// fetchdata downloads an activity calendar JSON to a local path. The source
// can be anything go-getter understands: plain HTTP(S), git subdirectories,
// S3, or local files.
func main() {
	var (
		src = flag.String("src", "", "source url (http, git::, s3::, file path)")
		out = flag.String("o", "./activity.json", "output path")
	)
	flag.Parse()

	if *src == "" {
		log.Fatal("source url required")
	}

	if err := os.RemoveAll(*out); err != nil {
		log.Fatal(err)
	}

	log.Default().Printf("start downloading activity data %s", *src)

	if err := get.GetFile(*out, *src); err != nil {
		log.Fatal(err)
	}

	log.Default().Printf("done downloading activity data %s", *out)
}
