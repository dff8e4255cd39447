package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-ledger/internal/domain"
	"github.com/jhoicas/sales-ledger/internal/domain/entity"
)

// LineReader lee una línea de entrada mostrando un prompt. Devuelve io.EOF cuando la entrada termina.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// scannerReader lee de un io.Reader línea a línea (pipes y tests). Las líneas no tienen límite de longitud.
type scannerReader struct {
	r   *bufio.Reader
	out io.Writer
}

// NewScannerReader construye un LineReader sobre r; los prompts se escriben en out.
func NewScannerReader(r io.Reader, out io.Writer) LineReader {
	return &scannerReader{r: bufio.NewReader(r), out: out}
}

func (s *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *scannerReader) Close() error { return nil }

// readlineReader lee de la terminal con edición de línea. Ctrl-C y Ctrl-D equivalen a salir.
type readlineReader struct {
	rl *readline.Instance
}

// NewTerminalReader construye un LineReader interactivo con chzyer/readline (sin historial).
func NewTerminalReader() (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    -1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

func (r *readlineReader) Close() error { return r.rl.Close() }

// Helpers de parseo: validación local antes de llegar a los casos de uso.

func parseID(s, message string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("id", message)
	}
	return id, nil
}

func parseInt(s, field, message string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, domain.NewValidationError(field, message)
	}
	return n, nil
}

func parsePrice(s, message string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, domain.NewValidationError("price", message)
	}
	if d.IsPositive() && !entity.AmountFitsStorage(d) {
		return decimal.Zero, domain.NewValidationError("price", "Price is out of range.")
	}
	return d, nil
}
