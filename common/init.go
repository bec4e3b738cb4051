package common

import (
	"flag"
)

var (
	Port         = flag.Int("port", 3000, "the listening port")
	PrintVersion = flag.Bool("version", false, "print version and exit")
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func Init() {
	flag.Parse()
}
