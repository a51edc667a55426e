// Command squash is the file-level front-end for the codec packages. Every
// subcommand reads one input file and writes one output file; "-" selects
// stdin or stdout. The codecs themselves live in the library packages --
// this binary only moves bytes and parameters around.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dargueta/squash/archive"
	"github.com/dargueta/squash/golomb"
	"github.com/dargueta/squash/huffman"
	"github.com/dargueta/squash/lzw"
	"github.com/dargueta/squash/quant"
	"github.com/dargueta/squash/rle"
)

func main() {
	app := cli.App{
		Name:  "squash",
		Usage: "Compress and expand data with the squash codec family",
		Commands: []*cli.Command{
			{
				Name:  "rle",
				Usage: "Textual run-length encoding",
				Subcommands: []*cli.Command{
					{
						Name:      "compress",
						Action:    rleCompress,
						ArgsUsage: "INPUT  OUTPUT",
					},
					{
						Name:      "decompress",
						Action:    rleDecompress,
						ArgsUsage: "INPUT  OUTPUT",
					},
				},
			},
			{
				Name:  "huffman",
				Usage: "Huffman prefix coding; the code table travels as a CSV side file",
				Subcommands: []*cli.Command{
					{
						Name:      "compress",
						Action:    huffmanCompress,
						ArgsUsage: "INPUT  OUTPUT  TABLE_CSV",
					},
					{
						Name:      "decompress",
						Action:    huffmanDecompress,
						ArgsUsage: "INPUT  OUTPUT  TABLE_CSV",
					},
				},
			},
			{
				Name:  "golomb",
				Usage: "Golomb coding of non-negative integers, one value or code per line",
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:     "m",
						Usage:    "Golomb modulus shared by encoder and decoder",
						Required: true,
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:      "encode",
						Action:    golombEncode,
						ArgsUsage: "INPUT  OUTPUT",
					},
					{
						Name:      "decode",
						Action:    golombDecode,
						ArgsUsage: "INPUT  OUTPUT",
					},
				},
			},
			{
				Name:  "lzw",
				Usage: "LZW dictionary coding, one decimal code per line",
				Subcommands: []*cli.Command{
					{
						Name:      "compress",
						Action:    lzwCompress,
						ArgsUsage: "INPUT  OUTPUT",
					},
					{
						Name:      "decompress",
						Action:    lzwDecompress,
						ArgsUsage: "INPUT  OUTPUT",
					},
				},
			},
			{
				Name:      "quantize",
				Usage:     "Reduce a grayscale PNG to a fixed number of intensity levels",
				Action:    quantizeImage,
				ArgsUsage: "INPUT_PNG  OUTPUT_PNG",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "levels",
						Usage: "Number of intensity levels to keep, between 2 and 256",
						Value: 16,
					},
				},
			},
			{
				Name:      "pack",
				Usage:     "Pack an encoded artifact into its compressed container",
				Action:    packArtifact,
				ArgsUsage: "INPUT  OUTPUT",
			},
			{
				Name:      "unpack",
				Usage:     "Expand a packed artifact container",
				Action:    unpackArtifact,
				ArgsUsage: "INPUT  OUTPUT",
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

////////////////////////////////////////////////////////////////////////////////
// Subcommand actions

func rleCompress(context *cli.Context) error {
	input, outputPath, err := fileArgs(context)
	if err != nil {
		return err
	}
	return writeOutput(outputPath, []byte(rle.Compress(string(input))))
}

func rleDecompress(context *cli.Context) error {
	input, outputPath, err := fileArgs(context)
	if err != nil {
		return err
	}

	text, err := rle.Decompress(string(input))
	if err != nil {
		return err
	}
	return writeOutput(outputPath, []byte(text))
}

func huffmanCompress(context *cli.Context) error {
	if context.NArg() != 3 {
		return fmt.Errorf("expected INPUT, OUTPUT and TABLE_CSV arguments")
	}
	input, err := readInput(context.Args().Get(0))
	if err != nil {
		return err
	}

	bits, table := huffman.Compress(string(input))

	tableBuffer := bytes.Buffer{}
	if err := huffman.WriteTable(&tableBuffer, table); err != nil {
		return err
	}
	if err := writeOutput(context.Args().Get(2), tableBuffer.Bytes()); err != nil {
		return err
	}
	return writeOutput(context.Args().Get(1), []byte(bits))
}

func huffmanDecompress(context *cli.Context) error {
	if context.NArg() != 3 {
		return fmt.Errorf("expected INPUT, OUTPUT and TABLE_CSV arguments")
	}
	input, err := readInput(context.Args().Get(0))
	if err != nil {
		return err
	}

	tableFile, err := os.Open(context.Args().Get(2))
	if err != nil {
		return fmt.Errorf("failed to open code table: %w", err)
	}
	defer tableFile.Close()

	table, err := huffman.ReadTable(tableFile)
	if err != nil {
		return err
	}

	text, err := huffman.Decompress(strings.TrimSuffix(string(input), "\n"), table)
	if err != nil {
		return err
	}
	return writeOutput(context.Args().Get(1), []byte(text))
}

func golombEncode(context *cli.Context) error {
	input, outputPath, err := fileArgs(context)
	if err != nil {
		return err
	}

	values, err := parseValueLines(string(input))
	if err != nil {
		return err
	}

	text, err := golomb.EncodeAll(values, context.Uint64("m"))
	if err != nil {
		return err
	}
	return writeOutput(outputPath, []byte(text))
}

func golombDecode(context *cli.Context) error {
	input, outputPath, err := fileArgs(context)
	if err != nil {
		return err
	}

	values, err := golomb.DecodeAll(string(input), context.Uint64("m"))
	if err != nil {
		return err
	}
	return writeOutput(outputPath, []byte(formatValueLines(values)))
}

func lzwCompress(context *cli.Context) error {
	input, outputPath, err := fileArgs(context)
	if err != nil {
		return err
	}

	codes := lzw.Compress(string(input))
	builder := strings.Builder{}
	for _, code := range codes {
		fmt.Fprintf(&builder, "%d\n", code)
	}
	return writeOutput(outputPath, []byte(builder.String()))
}

func lzwDecompress(context *cli.Context) error {
	input, outputPath, err := fileArgs(context)
	if err != nil {
		return err
	}

	codes := []int{}
	for i, line := range strings.Split(string(input), "\n") {
		if line == "" {
			continue
		}
		code, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return fmt.Errorf("line %d: %q is not a decimal code", i+1, line)
		}
		codes = append(codes, code)
	}

	text, err := lzw.Decompress(codes)
	if err != nil {
		return err
	}
	return writeOutput(outputPath, []byte(text))
}

func quantizeImage(context *cli.Context) error {
	if context.NArg() != 2 {
		return fmt.Errorf("expected INPUT_PNG and OUTPUT_PNG arguments")
	}

	inputFile, err := os.Open(context.Args().Get(0))
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer inputFile.Close()

	img, _, err := image.Decode(inputFile)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	quantized, err := quant.QuantizeImage(img, context.Int("levels"))
	if err != nil {
		return err
	}

	outputFile, err := os.Create(context.Args().Get(1))
	if err != nil {
		return fmt.Errorf("failed to create output image: %w", err)
	}
	defer outputFile.Close()
	return png.Encode(outputFile, quantized)
}

func packArtifact(context *cli.Context) error {
	input, outputPath, err := fileArgs(context)
	if err != nil {
		return err
	}

	container, err := archive.PackBytes(input)
	if err != nil {
		return err
	}
	return writeOutput(outputPath, container)
}

func unpackArtifact(context *cli.Context) error {
	input, outputPath, err := fileArgs(context)
	if err != nil {
		return err
	}

	artifact, err := archive.UnpackBytes(input)
	if err != nil {
		return err
	}
	return writeOutput(outputPath, artifact)
}

////////////////////////////////////////////////////////////////////////////////
// Helper functions

// fileArgs reads the two-argument INPUT OUTPUT form shared by most
// subcommands, returning the input contents and the output path.
func fileArgs(context *cli.Context) ([]byte, string, error) {
	if context.NArg() != 2 {
		return nil, "", fmt.Errorf("expected INPUT and OUTPUT arguments")
	}

	input, err := readInput(context.Args().Get(0))
	if err != nil {
		return nil, "", err
	}
	return input, context.Args().Get(1), nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func parseValueLines(text string) ([]uint64, error) {
	values := []uint64{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		value, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a non-negative integer", i+1, line)
		}
		values = append(values, value)
	}
	return values, nil
}

func formatValueLines(values []uint64) string {
	builder := strings.Builder{}
	for _, value := range values {
		fmt.Fprintf(&builder, "%d\n", value)
	}
	return builder.String()
}
