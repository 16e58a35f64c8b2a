// Package main provides the Slate ML command line interface.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/petar/GoMNIST"

	"github.com/slate-ml/slate/matrix"
	"github.com/slate-ml/slate/network"
	"github.com/slate-ml/slate/persist"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Slate ML %s\n", version)
	case "train":
		if err := runTrain(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "train:", err)
			os.Exit(1)
		}
	case "predict":
		if err := runPredict(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "predict:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Slate ML - a trainable feedforward network")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train a network on MNIST and save it")
	fmt.Println("  predict    Classify one MNIST test image with a saved network")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	dataDir := fs.String("data", "data", "directory with the MNIST IDX files")
	layers := fs.String("layers", "784,100,10", "comma-separated layer sizes")
	lr := fs.Float64("lr", 0.5, "learning rate")
	epochs := fs.Int("epochs", 1, "passes over the training set")
	seed := fs.Int64("seed", 1, "seed for initialization and shuffling")
	limit := fs.Int("limit", 0, "max training samples per epoch (0 = all)")
	out := fs.String("out", "model.slate", "output path for the binary model")
	textOut := fs.String("text", "", "optional output path for the plain-text model")
	quiet := fs.Bool("quiet", false, "suppress per-sample progress lines")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := parseLayers(*layers)
	if err != nil {
		return err
	}

	trainSet, testSet, err := GoMNIST.Load(*dataDir)
	if err != nil {
		return fmt.Errorf("failed to load MNIST from %s: %w", *dataDir, err)
	}
	samples, err := samplesFromSet(trainSet, *limit)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	net, err := network.New(sizes, rng)
	if err != nil {
		return err
	}

	cfg := network.TrainConfig{LearningRate: *lr}
	if *quiet {
		cfg.Progress = io.Discard
	}

	for epoch := 1; epoch <= *epochs; epoch++ {
		shuffled := network.Shuffle(samples, rng)
		net, err = net.Train(shuffled, cfg)
		if err != nil {
			return err
		}
		correct, total, err := evaluate(net, testSet)
		if err != nil {
			return err
		}
		fmt.Printf("epoch %d: test accuracy %d/%d (%.2f%%)\n",
			epoch, correct, total, 100*float64(correct)/float64(total))
	}

	if err := persist.WriteFile(*out, net); err != nil {
		return err
	}
	fmt.Printf("saved binary model to %s\n", *out)
	if *textOut != "" {
		if err := persist.WriteTextFile(*textOut, net); err != nil {
			return err
		}
		fmt.Printf("saved plain-text model to %s\n", *textOut)
	}
	return nil
}

func runPredict(args []string) error {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	modelPath := fs.String("model", "model.slate", "path to a saved binary model")
	dataDir := fs.String("data", "data", "directory with the MNIST IDX files")
	index := fs.Int("index", 0, "index of the test image to classify")
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := persist.ReadFile(*modelPath)
	if err != nil {
		return err
	}

	_, testSet, err := GoMNIST.Load(*dataDir)
	if err != nil {
		return fmt.Errorf("failed to load MNIST from %s: %w", *dataDir, err)
	}
	if *index < 0 || *index >= len(testSet.Images) {
		return fmt.Errorf("index %d out of range [0, %d)", *index, len(testSet.Images))
	}

	input, err := imageColumn(testSet.Images[*index])
	if err != nil {
		return err
	}
	out, err := net.Predict(input)
	if err != nil {
		return err
	}
	fmt.Printf("predicted %d, actual %d\n", network.Argmax(out), testSet.Labels[*index])
	return nil
}

// parseLayers turns "784,100,10" into []int{784, 100, 10}.
func parseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad layer size %q: %w", p, err)
		}
		sizes[i] = n
	}
	return sizes, nil
}

// samplesFromSet converts a GoMNIST set into labeled column-vector
// samples with pixels normalized to [0, 1] and one-hot targets.
func samplesFromSet(set *GoMNIST.Set, limit int) ([]network.Sample, error) {
	n := len(set.Images)
	if limit > 0 && n > limit {
		n = limit
	}
	samples := make([]network.Sample, n)
	for i := 0; i < n; i++ {
		input, err := imageColumn(set.Images[i])
		if err != nil {
			return nil, err
		}
		target, err := network.OneHot(int(set.Labels[i]), 10)
		if err != nil {
			return nil, err
		}
		samples[i] = network.Sample{Input: input, Target: target}
	}
	return samples, nil
}

// imageColumn flattens a raw MNIST image into a normalized column vector.
func imageColumn(img GoMNIST.RawImage) (*matrix.Matrix, error) {
	data := make([]float64, len(img))
	for i, px := range img {
		data[i] = float64(px) / 255.0
	}
	return matrix.FromSlice(data, len(data), 1)
}

// evaluate counts argmax matches over the test set.
func evaluate(net *network.Network, set *GoMNIST.Set) (correct, total int, err error) {
	for i := range set.Images {
		input, err := imageColumn(set.Images[i])
		if err != nil {
			return 0, 0, err
		}
		out, err := net.Predict(input)
		if err != nil {
			return 0, 0, err
		}
		if network.Argmax(out) == int(set.Labels[i]) {
			correct++
		}
		total++
	}
	return correct, total, nil
}
