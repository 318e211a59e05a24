package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/config"
	"github.com/frisklabs/frisk/mockapi"
)

func main() {
	addr := flag.String("addr", ":8787", "address to listen on")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.FromRoot(&config.Root{})
	logBuilder := aplog.NewBuilder(cfg.GetRoot().Logging.GetRootLogger())

	server := mockapi.NewServer(cfg, logBuilder)
	if err := server.Run(*addr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
