package classify

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"
)

// ONNXConfig configures the local ONNX classifier backend.
type ONNXConfig struct {
	// LibraryPath points at the onnxruntime shared library. Empty uses the
	// platform default search path.
	LibraryPath string

	// ModelPath is the exported sequence-classification model (.onnx).
	ModelPath string

	// TokenizerPath is the HuggingFace tokenizer.json that shipped with the
	// model checkpoint.
	TokenizerPath string

	// MaxSeqLen is the model's token limit. Defaults to 512.
	MaxSeqLen int
}

// ONNXClassifier runs the pretrained formality ranker locally through
// onnxruntime. Input text is tokenized, padded to nothing (batch of one),
// and the two logits are softmaxed into a class probability.
type ONNXClassifier struct {
	cfg     ONNXConfig
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession

	// ORT sessions are not documented as safe for concurrent Run calls.
	mu sync.Mutex
}

// NewONNXClassifier loads the tokenizer and opens an inference session.
func NewONNXClassifier(cfg ONNXConfig) (*ONNXClassifier, error) {
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("onnx classifier: no model path configured")
	}
	if cfg.MaxSeqLen <= 0 {
		cfg.MaxSeqLen = 512
	}

	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("onnx classifier: load tokenizer: %w", err)
	}

	if cfg.LibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.LibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("onnx classifier: init onnxruntime: %w", err)
		}
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		nil)
	if err != nil {
		return nil, fmt.Errorf("onnx classifier: open session: %w", err)
	}

	return &ONNXClassifier{cfg: cfg, tk: tk, session: session}, nil
}

// Name identifies the backend for logging.
func (c *ONNXClassifier) Name() string {
	return "onnx"
}

// Classify tokenizes text and runs one inference pass.
func (c *ONNXClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	enc, err := c.tk.EncodeSingle(text, true)
	if err != nil {
		return Prediction{}, fmt.Errorf("tokenize: %w", err)
	}

	ids := enc.Ids
	mask := enc.AttentionMask
	if len(ids) > c.cfg.MaxSeqLen {
		ids = ids[:c.cfg.MaxSeqLen]
		mask = mask[:c.cfg.MaxSeqLen]
	}
	if len(ids) == 0 {
		return Prediction{}, fmt.Errorf("tokenize: empty encoding")
	}

	inputIDs := make([]int64, len(ids))
	attention := make([]int64, len(ids))
	for i := range ids {
		inputIDs[i] = int64(ids[i])
		attention[i] = int64(mask[i])
	}

	shape := ort.NewShape(1, int64(len(ids)))
	idsTensor, err := ort.NewTensor(shape, inputIDs)
	if err != nil {
		return Prediction{}, fmt.Errorf("input tensor: %w", err)
	}
	defer idsTensor.Destroy()

	maskTensor, err := ort.NewTensor(shape, attention)
	if err != nil {
		return Prediction{}, fmt.Errorf("mask tensor: %w", err)
	}
	defer maskTensor.Destroy()

	logitsTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 2))
	if err != nil {
		return Prediction{}, fmt.Errorf("output tensor: %w", err)
	}
	defer logitsTensor.Destroy()

	c.mu.Lock()
	err = c.session.Run(
		[]ort.Value{idsTensor, maskTensor},
		[]ort.Value{logitsTensor},
	)
	c.mu.Unlock()
	if err != nil {
		return Prediction{}, fmt.Errorf("inference: %w", err)
	}

	return predictionFromLogits(logitsTensor.GetData())
}

// Close releases the inference session. The ORT environment stays up for
// the process; other sessions may still be using it.
func (c *ONNXClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		err := c.session.Destroy()
		c.session = nil
		return err
	}
	return nil
}

// predictionFromLogits softmaxes the two class logits and picks the argmax,
// matching how the upstream classification pipeline reports its label.
func predictionFromLogits(logits []float32) (Prediction, error) {
	if len(logits) < 2 {
		return Prediction{}, fmt.Errorf("inference: expected 2 logits, got %d", len(logits))
	}

	// Shift by the max logit for numerical stability.
	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}

	var sum float64
	probs := make([]float64, len(logits))
	for i, l := range logits {
		probs[i] = math.Exp(float64(l - maxLogit))
		sum += probs[i]
	}

	best := 0
	for i := range probs {
		probs[i] /= sum
		if probs[i] > probs[best] {
			best = i
		}
	}

	return Prediction{Class: best, Probability: probs[best]}, nil
}
