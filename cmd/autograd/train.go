package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/born-ml/autograd/autodiff"
	"github.com/born-ml/autograd/internal/envconfig"
	"github.com/born-ml/autograd/nn"
	"github.com/born-ml/autograd/optim"
	"github.com/born-ml/autograd/tensor"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errUnknownOptimizer = errors.New("unknown optimizer")

// xorInputs and xorTargets are the four XOR samples.
var (
	xorInputs  = []float64{0, 0, 0, 1, 1, 0, 1, 1}
	xorTargets = []float64{0, 1, 1, 0}
)

// trainConfig holds the hyperparameters shared by every run.
type trainConfig struct {
	Epochs    int
	LR        float64
	Hidden    int
	Optimizer string
	Momentum  float64
	LogEvery  int
}

func (c trainConfig) validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d", c.Epochs)
	}
	if c.Hidden <= 0 {
		return fmt.Errorf("hidden must be positive, got %d", c.Hidden)
	}
	if c.LR <= 0 {
		return fmt.Errorf("learning rate must be positive, got %g", c.LR)
	}
	switch c.Optimizer {
	case "sgd", "adam":
		return nil
	default:
		return fmt.Errorf("%q: %w", c.Optimizer, errUnknownOptimizer)
	}
}

// runResult summarizes one finished training run.
type runResult struct {
	Run         int
	Seed        int64
	InitialLoss float64
	Loss        float64
	Predictions []float64
}

// xorNet is a 2-layer sigmoid network with a squared-error head:
//
//	out  = sigmoid(linear2(sigmoid(linear1(x))))
//	loss = (out - target)²
type xorNet struct {
	graph *autodiff.Graph[float64]
	model *nn.Sequential[float64]
	out   autodiff.NodeID
	loss  autodiff.NodeID
}

func newXORNet(hidden int, rng *rand.Rand, logger *slog.Logger) (*xorNet, error) {
	g := autodiff.NewGraph[float64](autodiff.WithLogger(logger), autodiff.WithName("xor"))
	batch := len(xorTargets)

	x, err := tensor.FromSlice(xorInputs, tensor.Shape{batch, 2})
	if err != nil {
		return nil, err
	}
	y, err := tensor.FromSlice(xorTargets, tensor.Shape{batch, 1})
	if err != nil {
		return nil, err
	}

	l1, err := nn.NewLinear(g, 2, hidden, batch, rng)
	if err != nil {
		return nil, err
	}
	l2, err := nn.NewLinear(g, hidden, 1, batch, rng)
	if err != nil {
		return nil, err
	}
	n := &xorNet{
		graph: g,
		model: nn.NewSequential[float64](l1, nn.NewSigmoid(g), l2, nn.NewSigmoid(g)),
	}

	xID, err := g.Variable(x, false)
	if err != nil {
		return nil, err
	}
	target, err := g.Variable(y, false)
	if err != nil {
		return nil, err
	}
	if n.out, err = n.model.Forward(xID); err != nil {
		return nil, err
	}
	if n.loss, err = nn.SquaredError(g, n.out, target); err != nil {
		return nil, err
	}
	return n, nil
}

// meanLoss runs a forward pass and returns the mean squared error.
func (n *xorNet) meanLoss() (float64, error) {
	if _, err := n.graph.Forward(); err != nil {
		return 0, err
	}
	out, err := n.graph.Value(n.loss)
	if err != nil {
		return 0, err
	}
	return out.Sum() / float64(out.NumElements()), nil
}

func newOptimizer(cfg trainConfig, g *autodiff.Graph[float64]) optim.Optimizer[float64] {
	if cfg.Optimizer == "adam" {
		return optim.NewAdam(g, optim.AdamConfig[float64]{LR: cfg.LR})
	}
	return optim.NewSGD(g, optim.SGDConfig[float64]{LR: cfg.LR, Momentum: cfg.Momentum})
}

// trainRun trains one network from seed and reports its final state.
// Each run owns its graph, so runs may execute concurrently.
func trainRun(ctx context.Context, cfg trainConfig, run int, seed int64, logger *slog.Logger) (runResult, error) {
	logger = logger.With("run", run)
	net, err := newXORNet(cfg.Hidden, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return runResult{}, err
	}
	opt := newOptimizer(cfg, net.graph)
	params := net.model.Parameters()

	initial, err := net.meanLoss()
	if err != nil {
		return runResult{}, err
	}

	for epoch := range cfg.Epochs {
		if err := ctx.Err(); err != nil {
			return runResult{}, err
		}

		opt.ZeroGrad()
		loss, err := net.meanLoss()
		if err != nil {
			return runResult{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if err := net.graph.Backward(); err != nil {
			return runResult{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if err := opt.Step(params); err != nil {
			return runResult{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		if cfg.LogEvery > 0 && epoch%cfg.LogEvery == 0 {
			logger.Info("training", "epoch", epoch, "loss", loss)
		}
	}

	final, err := net.meanLoss()
	if err != nil {
		return runResult{}, err
	}
	preds, err := net.graph.Value(net.out)
	if err != nil {
		return runResult{}, err
	}
	logger.Debug("run complete", "loss", final)

	return runResult{
		Run:         run,
		Seed:        seed,
		InitialLoss: initial,
		Loss:        final,
		Predictions: preds.Values(),
	}, nil
}

// trainRuns trains runs independent networks concurrently, seeding run i
// with seed+i. Results are ordered by run.
func trainRuns(ctx context.Context, cfg trainConfig, runs int, seed int64, logger *slog.Logger) ([]runResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", runs)
	}

	results := make([]runResult, runs)
	g, ctx := errgroup.WithContext(ctx)
	for i := range runs {
		g.Go(func() error {
			r, err := trainRun(ctx, cfg, i, seed+int64(i), logger)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderResults(w io.Writer, cfg trainConfig, results []runResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"RUN", "SEED", "OPTIMIZER", "INITIAL LOSS", "FINAL LOSS", "0⊕0", "0⊕1", "1⊕0", "1⊕1"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Run),
			strconv.FormatInt(r.Seed, 10),
			cfg.Optimizer,
			strconv.FormatFloat(r.InitialLoss, 'f', 6, 64),
			strconv.FormatFloat(r.Loss, 'f', 6, 64),
		}
		for _, p := range r.Predictions {
			row = append(row, strconv.FormatFloat(p, 'f', 3, 64))
		}
		table.Append(row)
	}
	table.Render()
}

// TrainHandler runs the train command.
func TrainHandler(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	epochs, _ := flags.GetInt("epochs")
	lr, _ := flags.GetFloat64("lr")
	hidden, _ := flags.GetInt("hidden")
	optimizer, _ := flags.GetString("optimizer")
	momentum, _ := flags.GetFloat64("momentum")
	runs, _ := flags.GetInt("runs")
	seed, _ := flags.GetInt64("seed")
	logEvery, _ := flags.GetInt("log-every")
	verbose, _ := flags.GetBool("verbose")

	if !flags.Changed("epochs") {
		epochs = int(envconfig.Epochs())
	}
	if !flags.Changed("seed") {
		seed = int64(envconfig.Seed())
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := trainConfig{
		Epochs:    epochs,
		LR:        lr,
		Hidden:    hidden,
		Optimizer: optimizer,
		Momentum:  momentum,
		LogEvery:  logEvery,
	}
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	logger.Debug("starting training", "epochs", epochs, "runs", runs, "optimizer", optimizer, "seed", seed)

	results, err := trainRuns(cmd.Context(), cfg, runs, seed, logger)
	if err != nil {
		return err
	}
	renderResults(cmd.OutOrStdout(), cfg, results)
	return nil
}

func newTrainCmd() *cobra.Command {
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Train a 2-layer network on XOR",
		Args:  cobra.NoArgs,
		RunE:  TrainHandler,
	}

	trainCmd.Flags().Int("epochs", 5000, "Number of training epochs")
	trainCmd.Flags().Float64("lr", 0.5, "Learning rate")
	trainCmd.Flags().Int("hidden", 4, "Hidden layer width")
	trainCmd.Flags().String("optimizer", "sgd", "Optimizer: sgd or adam")
	trainCmd.Flags().Float64("momentum", 0, "SGD momentum")
	trainCmd.Flags().Int("runs", 1, "Number of independent runs trained concurrently")
	trainCmd.Flags().Int64("seed", 0, "Base seed, run i uses seed+i (0 = time based)")
	trainCmd.Flags().Int("log-every", 500, "Log the loss every N epochs (0 disables)")
	trainCmd.Flags().Bool("verbose", false, "Enable debug logging")

	return trainCmd
}
