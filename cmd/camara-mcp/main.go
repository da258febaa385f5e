// camara-mcp exposes the Câmara dos Deputados open-data API as MCP tools.
// At startup it fetches the API's OpenAPI document, derives one tool per
// endpoint, and serves them over stdio or streamable HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/opencamara/camara-mcp/internal/common"
	"github.com/opencamara/camara-mcp/internal/config"
	camaramcp "github.com/opencamara/camara-mcp/internal/mcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "camara-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	mcpServer, _ := camaramcp.NewServer(context.Background(), cfg, logger)

	if *stdio {
		// Stdio transport reads stdin and writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", cfg.Server.Port).Msg("starting MCP streamable HTTP server")

	if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
