package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/barline/barline"
)

func main() {
	configURL := flag.String("config", "", "optional YAML configuration URL")
	scriptURL := flag.String("script", "", "optional command script URL; stdin is read when empty")
	flag.Parse()

	ctx := context.Background()

	var srv *barline.Service
	var err error
	if *configURL != "" {
		if srv, err = barline.NewFromConfigURL(ctx, *configURL); err != nil {
			log.Fatalf("barline: %v", err)
		}
	} else {
		srv = barline.New()
	}
	defer srv.Close()

	sess := srv.Session()
	if *scriptURL != "" {
		err = sess.RunScript(ctx, *scriptURL)
	} else {
		err = sess.Run(ctx, os.Stdin)
	}
	if err != nil {
		log.Fatalf("barline: %v", err)
	}
}
