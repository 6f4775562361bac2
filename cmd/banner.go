package main

import (
	"fmt"
	"io"
	"net"
	"range-server/internal"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// printBanner shows where the server can be reached and what it serves.
func printBanner(out io.Writer, config internal.Config, root string) {
	host := lo.Ternary(config.Host == "" || config.Host == "0.0.0.0", "localhost", config.Host)
	url := fmt.Sprintf("http://%s", net.JoinHostPort(host, strconv.Itoa(config.Port)))
	fmt.Fprintln(out, color.New(color.FgGreen, color.OpBold).Render("🚀 Range Server: "+url))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk([][]string{
		{"Listen", config.Address()},
		{"Root", root},
		{"Log level", config.LogLevel},
		{"Heartbeat", config.HeartbeatInterval.String()},
	})
	table.Render()
}
