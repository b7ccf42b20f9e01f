// Command c2svg converts sprite pixel arrays found in C sources into one SVG
// document per frame, as described by a JSON configuration:
//
//	c2svg -config configs/pecas.json
package main

import (
	"flag"
	"fmt"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-pixsvg/config"
	"badc0de.net/pkg/go-pixsvg/paths"
	"badc0de.net/pkg/go-pixsvg/vectorize"
)

var configPath string

func main() {
	paths.SetupFilePathFlag("c2svg.json", "config", &configPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	if configPath == "" {
		glog.Exitf("no -config given, and c2svg.json is in none of %v", paths.Dirs())
	}
	cfg, err := config.LoadVectorize(configPath)
	if err != nil {
		glog.Exitf("%v", err)
	}

	results := vectorize.Run(cfg)
	var written, failed int
	for _, res := range results {
		written += len(res.Written)
		if res.Err != nil {
			failed++
		}
	}
	fmt.Printf("%d sources, %d documents written, %d sources failed\n", len(results), written, failed)
	if failed > 0 {
		glog.Flush()
		os.Exit(1)
	}
}
