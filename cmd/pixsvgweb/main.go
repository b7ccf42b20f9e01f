// Command pixsvgweb serves a gallery over the SVG and PNG trees:
//
//	pixsvgweb -svg_base assets/svg -png_base assets/png -listen_address :8080
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"badc0de.net/pkg/go-pixsvg/config"
	"badc0de.net/pkg/go-pixsvg/paths"
	"badc0de.net/pkg/go-pixsvg/raster"
	"badc0de.net/pkg/go-pixsvg/web"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for pixsvgweb")
	svgBase       = flag.String("svg_base", "", "root of the svg tree; overrides the configuration")
	pngBase       = flag.String("png_base", "", "root of the png tree; overrides the configuration")
	banner        = flag.Bool("banner", true, "print a banner on startup")

	configPath string
)

func main() {
	paths.SetupFilePathFlag("svg2png.json", "config", &configPath)
	flagutil.Parse()

	if (*svgBase == "" || *pngBase == "") && configPath != "" {
		cfg, err := config.LoadRasterize(configPath)
		if err != nil {
			glog.Exitf("%v", err)
		}
		if *svgBase == "" {
			*svgBase = cfg.SVGBase
		}
		if *pngBase == "" {
			*pngBase = cfg.PNGBase
		}
	}
	if *svgBase == "" || *pngBase == "" {
		glog.Exitf("need -svg_base and -png_base, or a -config naming them")
	}

	if *banner {
		figure.NewFigure("pixsvg", "", true).Print()
	}

	r := mux.NewRouter()
	web.NewHandler(*svgBase, *pngBase, &raster.Rasterizer{}).RegisterRoutes(r)

	glog.Infof("serving %s and %s on %s", *svgBase, *pngBase, *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.LoggingHandler(os.Stderr, r)))
}
