// Command knetcompress is a diagnostic CLI around the compress package: it
// lists the static model table, and drives a single HandleState through a
// compress or decompress call against stdin/stdout, for probing a back-end
// without standing up a full transport.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli"

	"github.com/kronosnet/knet/compress"
)

var configFlag = cli.StringFlag{
	Name:  "config",
	Usage: "path to a JSON file holding {\"Model\":..,\"Level\":..,\"Threshold\":..}",
}

func loadConfig(path string) (compress.Config, error) {
	var cfg compress.Config
	if path == "" {
		return cfg, fmt.Errorf("missing required --config")
	}
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %v", path, err)
	}
	if err := jsoniter.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %v", path, err)
	}
	return cfg, nil
}

func listModels(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, "name\tid\tbuilt-in")
	for _, row := range compress.Models() {
		fmt.Fprintf(c.App.Writer, "%s\t%d\t%v\n", row.Name, row.ID, row.BuiltIn)
	}
	return nil
}

func compressCmd(c *cli.Context) error {
	cfg, err := loadConfig(c.String(configFlag.Name))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	in, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("read stdin: %v", err), 1)
	}

	h := compress.NewHandleState(nil)
	defer h.Close()
	if err := h.Configure(cfg); err != nil {
		return cli.NewExitError(fmt.Sprintf("configure %q: %v", cfg.Model, err), 1)
	}

	out, err := h.Compress(in)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("compress: %v", err), 1)
	}
	fmt.Fprintf(os.Stderr, "model_id=%d in=%dB out=%dB\n", h.Model(), len(in), len(out))
	_, err = os.Stdout.Write(out)
	return err
}

func decompressCmd(c *cli.Context) error {
	modelID, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return cli.NewExitError("usage: knetcompress decompress <model_id> < input", 1)
	}
	in, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("read stdin: %v", err), 1)
	}

	h := compress.NewHandleState(nil)
	defer h.Close()
	out, err := h.Decompress(uint8(modelID), in)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("decompress: %v", err), 1)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func main() {
	app := cli.NewApp()
	app.Name = "knetcompress"
	app.Usage = "inspect and exercise the knet compress back-ends"

	app.Commands = []cli.Command{
		{
			Name:   "list-models",
			Usage:  "print the static model table",
			Action: listModels,
		},
		{
			Name:   "compress",
			Usage:  "compress stdin per --config, write the result to stdout",
			Flags:  []cli.Flag{configFlag},
			Action: compressCmd,
		},
		{
			Name:      "decompress",
			Usage:     "decompress stdin tagged with the given model_id, write the result to stdout",
			ArgsUsage: "<model_id>",
			Action:    decompressCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
