// Command generate-goldens renders a fixed set of samples in every stroke
// mode and writes them as golden files for the regression tests.
package main

import (
	"bytes"
	"crypto/sha256"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ryanlewis/voidtype"
)

// GoldenMetadata represents the YAML front matter in golden files
// This should match the struct in golden_test.go
type GoldenMetadata struct {
	Sample         string         `yaml:"sample"`
	Mode           voidtype.Mode  `yaml:"mode"`
	Strokes        int            `yaml:"strokes"`
	GapRatio       float64        `yaml:"gap_ratio"`
	Scope          voidtype.Scope `yaml:"scope"`
	Seed           int64          `yaml:"seed"`
	Width          int            `yaml:"width"`
	Height         int            `yaml:"height"`
	Generated      string         `yaml:"generated"`
	Generator      string         `yaml:"generator"`
	ChecksumSHA256 string         `yaml:"checksum_sha256"`
}

var (
	outDir = flag.String("out", "testdata/goldens", "Output directory")
	modes  = flag.String("modes", "fill stripes random", "Space-separated list of stroke modes")
	scopes = flag.String("scopes", "byType full", "Space-separated list of random scopes")
	seed   = flag.Int64("seed", 1, "Random mode seed")
	strict = flag.Bool("strict", false, "Exit on any warning")
)

// Default samples including edge cases
var defaultSamples = []string{
	"VOID",
	"HELLO, WORLD!",
	"THE QUICK BROWN FOX\nJUMPS OVER THE LAZY DOG",
	"0123456789",
	"ПРИВЕТ МИР",
	" ",
	"A§B", // unknown rune
	`.,:;!?-+=/()`,
}

func main() {
	flag.Parse()

	for _, mode := range strings.Fields(*modes) {
		variants := []string{""}
		if voidtype.Mode(mode) == voidtype.ModeRandom {
			variants = strings.Fields(*scopes)
		}
		for _, scope := range variants {
			name := mode
			if scope != "" {
				name += "-" + strings.ToLower(scope)
			}
			dir := filepath.Join(*outDir, name)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatalf("Failed to create directory %s: %v", dir, err)
			}

			for _, sample := range defaultSamples {
				if err := generateGoldenFile(dir, voidtype.Mode(mode), voidtype.Scope(scope), sample); err != nil {
					if *strict {
						log.Fatalf("Failed to generate golden file: %v", err)
					}
					log.Printf("Warning: %v", err)
				}
			}
		}
	}

	log.Println("Golden file generation complete")
}

func generateGoldenFile(dir string, mode voidtype.Mode, scope voidtype.Scope, sample string) error {
	slug := slugify(sample)
	outFile := filepath.Join(dir, slug+".md")
	log.Printf("Generating %s", outFile)

	p := voidtype.DefaultParams()
	p.Mode = mode
	p.Random.Seed = *seed
	if scope != "" {
		p.Random.Scope = scope
	}

	var out bytes.Buffer
	if err := voidtype.Render(&out, sample, voidtype.WithParams(p)); err != nil {
		return fmt.Errorf("failed to render %s: %w", outFile, err)
	}
	svg := strings.TrimSuffix(out.String(), "\n")

	metadata := GoldenMetadata{
		Sample:         sample,
		Mode:           p.Mode,
		Strokes:        p.Strokes,
		GapRatio:       p.GapRatio,
		Scope:          p.Random.Scope,
		Seed:           p.Random.Seed,
		Width:          p.Width,
		Height:         p.Height,
		Generated:      time.Now().UTC().Format("2006-01-02"),
		Generator:      "generate-goldens",
		ChecksumSHA256: calculateChecksum(svg),
	}

	yamlData, err := yaml.Marshal(&metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlData)
	buf.WriteString("---\n\n")
	buf.WriteString("```svg\n")
	buf.WriteString(svg)
	buf.WriteString("\n```\n")

	if err := os.WriteFile(outFile, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", outFile, err)
	}
	return nil
}

func calculateChecksum(data string) string {
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

func slugify(s string) string {
	if strings.TrimSpace(s) == "" {
		return "space"
	}

	var result []rune
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || (r >= 'а' && r <= 'я') {
			result = append(result, r)
		} else if len(result) == 0 || result[len(result)-1] != '_' {
			result = append(result, '_')
		}
	}

	slug := strings.Trim(string(result), "_")
	if slug == "" {
		hash := sha256.Sum256([]byte(s))
		return fmt.Sprintf("%x", hash)[:8]
	}
	return slug
}
