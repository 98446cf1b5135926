package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	namecleaner "github.com/baditaflorin/go_name_cleaner"
	"github.com/baditaflorin/go_name_cleaner/pkg/check"
	"github.com/baditaflorin/go_name_cleaner/pkg/notation"
	"github.com/baditaflorin/go_name_cleaner/pkg/stream"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
)

var (
	// Name checker with default separator configuration
	nameChecker *check.Checker

	// Logger instance
	logger l.Logger
)

// NameRequest carries a single name to classify.
type NameRequest struct {
	Name string `json:"name"`
}

// CheckRequest carries a name plus checker configuration.
type CheckRequest struct {
	Name        string `json:"name"`
	Separator   string `json:"separator,omitempty"`
	IgnoreChars string `json:"ignore_chars,omitempty"`
}

// NormalizeRequest carries a name plus normalization configuration.
type NormalizeRequest struct {
	Name         string `json:"name"`
	Notation     string `json:"notation,omitempty"`
	Case         string `json:"case,omitempty"`
	Delimiter    string `json:"delimiter,omitempty"`
	PreserveCase bool   `json:"preserve_case,omitempty"`
}

// ConvertRequest carries a name plus the conversion to apply.
type ConvertRequest struct {
	Name       string `json:"name"`
	Conversion string `json:"conversion"`
}

// CleanRequest carries a name plus the ordered filters to apply.
type CleanRequest struct {
	Name       string   `json:"name"`
	Operations []string `json:"operations"`
}

// DetectResponse reports a detected naming convention.
type DetectResponse struct {
	Convention string `json:"convention"`
}

// CheckResponse reports the outcome of a name check.
type CheckResponse struct {
	Issues     []string               `json:"issues"`
	Diagnostic string                 `json:"diagnostic"`
	Clean      bool                   `json:"clean"`
	Convention string                 `json:"convention"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// ResultResponse reports a rewritten name.
type ResultResponse struct {
	Result string `json:"result"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// conversions maps the conversion names accepted by /convert onto the
// converter functions.
var conversions = map[string]func(string) string{
	"camel_to_snake":  namecleaner.CamelToSnake,
	"pascal_to_snake": namecleaner.PascalToSnake,
	"snake_to_camel":  namecleaner.SnakeToCamel,
	"snake_to_pascal": namecleaner.SnakeToPascal,
	"title_to_snake":  namecleaner.TitleToSnake,
	"title_to_camel":  namecleaner.TitleToCamel,
	"title_to_pascal": namecleaner.TitleToPascal,
}

// cleaners maps the operation names accepted by /clean onto the filter
// functions, applied in request order.
var cleaners = map[string]func(string) string{
	"remove_non_ascii":                  namecleaner.RemoveNonASCII,
	"remove_non_alphabetic":             namecleaner.RemoveNonAlphabetic,
	"remove_non_alphanumeric":           namecleaner.RemoveNonAlphanumeric,
	"remove_whitespace":                 namecleaner.RemoveWhitespace,
	"remove_multiple_whitespace":        namecleaner.RemoveMultipleWhitespace,
	"remove_outer_whitespace":           namecleaner.RemoveOuterWhitespace,
	"remove_round_brackets":             namecleaner.RemoveRoundBrackets,
	"remove_square_brackets":            namecleaner.RemoveSquareBrackets,
	"remove_curly_brackets":             namecleaner.RemoveCurlyBrackets,
	"remove_angle_brackets":             namecleaner.RemoveAngleBrackets,
	"remove_windows_special_characters": namecleaner.RemoveWindowsSpecialCharacters,
	"replace_ampersand":                 namecleaner.ReplaceAmpersand,
	"replace_dashes_with_hyphen":        namecleaner.ReplaceDashesWithHyphen,
	"replace_accents":                   namecleaner.ReplaceAccents,
	"lowercase_minor_words":             namecleaner.LowercaseMinorWords,
	"capitalize_after_space":            namecleaner.CapitalizeAfterSpace,
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting name cleaner HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
	)

	// Initialize the shared checker
	checkerOpts := []check.Option{check.WithLogger(logger)}
	if *warmUp {
		checkerOpts = append(checkerOpts, check.WithWarmUp(true))
	}
	nameChecker, err = check.New(checkerOpts...)
	if err != nil {
		logger.Error("Failed to initialize name checker", "error", err)
		os.Exit(1)
	}

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// createLogger builds the application logger, writing to logFile when set.
func createLogger(logFile string) (l.Logger, error) {
	output := os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  logFile != "",
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	// Set common headers
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "NameCleanerServer")

	// Route based on path
	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/detect":
		handleDetect(ctx)
	case "/check":
		handleCheck(ctx)
	case "/normalize":
		handleNormalize(ctx)
	case "/convert":
		handleConvert(ctx)
	case "/clean":
		handleClean(ctx)
	case "/stream":
		handleStream(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	// Log request
	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(`{"status":"ok"}`)
}

func handleDetect(ctx *fasthttp.RequestCtx) {
	var req NameRequest
	if !decodeJSONBody(ctx, &req) {
		return
	}

	writeJSON(ctx, DetectResponse{
		Convention: string(namecleaner.DetectNamingConvention(req.Name)),
	})
}

func handleCheck(ctx *fasthttp.RequestCtx) {
	var req CheckRequest
	if !decodeJSONBody(ctx, &req) {
		return
	}

	checker := nameChecker
	if req.Separator != "" || req.IgnoreChars != "" {
		var err error
		checker, err = check.New(
			check.WithLogger(logger),
			check.WithSeparator(orDefault(req.Separator, " ")),
			check.WithIgnoreChars(req.IgnoreChars),
		)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, err.Error())
			return
		}
	}

	report := checker.Check(ctx, req.Name)
	writeJSON(ctx, CheckResponse{
		Issues:     report.Issues,
		Diagnostic: checker.CheckString(ctx, req.Name),
		Clean:      report.Clean,
		Convention: string(report.Convention),
		Details:    report.Details,
	})
}

func handleNormalize(ctx *fasthttp.RequestCtx) {
	var req NormalizeRequest
	if !decodeJSONBody(ctx, &req) {
		return
	}

	opts := []namecleaner.NotationOption{}
	if req.Notation != "" {
		opts = append(opts, namecleaner.WithNotation(namecleaner.Notation(req.Notation)))
	}
	if req.Case != "" {
		opts = append(opts, namecleaner.WithCase(namecleaner.Case(req.Case)))
	}
	if req.Delimiter != "" {
		opts = append(opts, namecleaner.WithDelimiter(req.Delimiter))
	}
	if req.PreserveCase {
		opts = append(opts, namecleaner.WithPreserveCase())
	}

	writeJSON(ctx, ResultResponse{
		Result: namecleaner.NormalizeNotation(req.Name, opts...),
	})
}

func handleConvert(ctx *fasthttp.RequestCtx) {
	var req ConvertRequest
	if !decodeJSONBody(ctx, &req) {
		return
	}

	converter, ok := conversions[req.Conversion]
	if !ok {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, fmt.Sprintf("unknown conversion: %q", req.Conversion))
		return
	}

	writeJSON(ctx, ResultResponse{Result: converter(req.Name)})
}

func handleClean(ctx *fasthttp.RequestCtx) {
	var req CleanRequest
	if !decodeJSONBody(ctx, &req) {
		return
	}

	result := req.Name
	for _, op := range req.Operations {
		cleanFn, ok := cleaners[op]
		if !ok {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, fmt.Sprintf("unknown operation: %q", op))
			return
		}
		result = cleanFn(result)
	}

	writeJSON(ctx, ResultResponse{Result: result})
}

// handleStream rewrites a newline-separated request body, one name per line.
// The target notation is selected with the ?notation= query argument.
func handleStream(ctx *fasthttp.RequestCtx) {
	rewriter, err := stream.New(
		stream.WithLogger(logger),
		stream.WithNormalizerOptions(
			notation.WithLogger(logger),
			notation.WithNotation(namecleaner.Notation(ctx.QueryArgs().Peek("notation"))),
			notation.WithOptimizedSegmenter(),
		),
	)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, err.Error())
		return
	}

	ctx.Response.Header.Set("Content-Type", "text/plain; charset=utf-8")
	count, err := rewriter.Process(ctx, bytes.NewReader(ctx.PostBody()), ctx.Response.BodyWriter())
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, err.Error())
		return
	}
	ctx.Response.Header.Set("X-Names-Processed", fmt.Sprintf("%d", count))
}

// decodeJSONBody unmarshals the request body into v, writing a 400 response
// on failure.
func decodeJSONBody(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, "failed to encode response")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(data)
}

func writeJSONError(ctx *fasthttp.RequestCtx, msg string) {
	data, _ := json.Marshal(ErrorResponse{Error: msg})
	ctx.SetBody(data)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
