package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cubepack/cubepack"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const version = "0.1.0"

// Job describes a packing run loaded from a YAML file.
type Job struct {
	// BinAlgo selects the multi-bin heuristic: bnf, bff, bbf or global.
	BinAlgo string `yaml:"bin_algo"`
	// Algorithm names the single-bin engine, e.g. MaxCubsBssf or
	// GuillotineBvfMinas. Defaults to MaxCubsBssf.
	Algorithm string `yaml:"algorithm"`
	// Sort names the item ordering: volume, surface, diff, sside, lside,
	// ratio or none. Defaults to volume.
	Sort string `yaml:"sort"`
	// Rotation enables swapping item width and height.
	Rotation bool `yaml:"rotation"`

	Bins  []JobBin  `yaml:"bins"`
	Items []JobItem `yaml:"items"`
}

type JobBin struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`
	Count  int `yaml:"count"`
}

type JobItem struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Depth  int    `yaml:"depth"`
	Count  int    `yaml:"count"`
	ID     string `yaml:"id"`
}

// Result is the JSON document written to stdout.
type Result struct {
	Bins       []cubepack.Size      `json:"bins"`
	Placements []cubepack.Placement `json:"placements"`
	Unplaced   int                  `json:"unplaced"`
}

var binAlgos = map[string]cubepack.BinAlgo{
	"":       cubepack.BBF,
	"bnf":    cubepack.BNF,
	"bff":    cubepack.BFF,
	"bbf":    cubepack.BBF,
	"global": cubepack.Global,
}

var algorithms = map[string]cubepack.Heuristic{
	"":                    cubepack.MaxCubsBssf,
	"MaxCubsBl":           cubepack.MaxCubsBl,
	"MaxCubsBssf":         cubepack.MaxCubsBssf,
	"MaxCubsBlsf":         cubepack.MaxCubsBlsf,
	"MaxCubsBaf":          cubepack.MaxCubsBaf,
	"MaxCubsFf":           cubepack.MaxCubsFf,
	"GuillotineBvfSas":    cubepack.GuillotineBvfSas,
	"GuillotineBvfLas":    cubepack.GuillotineBvfLas,
	"GuillotineBvfSlas":   cubepack.GuillotineBvfSlas,
	"GuillotineBvfLlas":   cubepack.GuillotineBvfLlas,
	"GuillotineBvfMaxas":  cubepack.GuillotineBvfMaxas,
	"GuillotineBvfMinas":  cubepack.GuillotineBvfMinas,
	"GuillotineBssfSas":   cubepack.GuillotineBssfSas,
	"GuillotineBssfLas":   cubepack.GuillotineBssfLas,
	"GuillotineBssfSlas":  cubepack.GuillotineBssfSlas,
	"GuillotineBssfLlas":  cubepack.GuillotineBssfLlas,
	"GuillotineBssfMaxas": cubepack.GuillotineBssfMaxas,
	"GuillotineBssfMinas": cubepack.GuillotineBssfMinas,
	"GuillotineBlsfSas":   cubepack.GuillotineBlsfSas,
	"GuillotineBlsfLas":   cubepack.GuillotineBlsfLas,
	"GuillotineBlsfSlas":  cubepack.GuillotineBlsfSlas,
	"GuillotineBlsfLlas":  cubepack.GuillotineBlsfLlas,
	"GuillotineBlsfMaxas": cubepack.GuillotineBlsfMaxas,
	"GuillotineBlsfMinas": cubepack.GuillotineBlsfMinas,
}

var sorts = map[string]cubepack.SortFunc{
	"":        cubepack.SortVolume,
	"volume":  cubepack.SortVolume,
	"surface": cubepack.SortSurfaceArea,
	"diff":    cubepack.SortDiff,
	"sside":   cubepack.SortShortSide,
	"lside":   cubepack.SortLongSide,
	"ratio":   cubepack.SortRatio,
	"none":    cubepack.SortNone,
}

func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job Job
	if err = yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &job, nil
}

func run(job *Job) (*Result, error) {
	binAlgo, ok := binAlgos[job.BinAlgo]
	if !ok {
		return nil, fmt.Errorf("unknown bin_algo %q", job.BinAlgo)
	}
	algorithm, ok := algorithms[job.Algorithm]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", job.Algorithm)
	}
	sortFunc, ok := sorts[job.Sort]
	if !ok {
		return nil, fmt.Errorf("unknown sort %q", job.Sort)
	}

	packer, err := cubepack.NewPacker(cubepack.Config{
		Mode:      cubepack.Offline,
		BinAlgo:   binAlgo,
		Algorithm: algorithm,
		Sort:      sortFunc,
		Rotation:  job.Rotation,
	})
	if err != nil {
		return nil, err
	}

	for _, b := range job.Bins {
		count := b.Count
		if count == 0 {
			count = 1
		}
		packer.AddBin(b.Width, b.Height, b.Depth, count)
	}

	var total int
	for _, item := range job.Items {
		count := item.Count
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			id := item.ID
			if id == "" {
				id = uuid.NewString()
			} else if count > 1 {
				id = fmt.Sprintf("%s/%d", item.ID, i)
			}
			packer.AddCub(item.Width, item.Height, item.Depth, id)
			total++
		}
	}

	packer.Pack()
	if err = packer.ValidatePacking(); err != nil {
		return nil, err
	}

	placements := packer.CubList()
	return &Result{
		Bins:       packer.BinList(),
		Placements: placements,
		Unplaced:   total - len(placements),
	}, nil
}

func main() {
	jobPath := flag.String("job", "", "path to the YAML job file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}
	if *jobPath == "" {
		fmt.Fprintln(os.Stderr, "usage: cubepack -job <file.yaml>")
		os.Exit(2)
	}

	job, err := loadJob(*jobPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result, err := run(job)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if result.Unplaced > 0 {
		os.Exit(1)
	}
}
