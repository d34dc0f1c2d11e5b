package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
	"github.com/amirhossein-jamali/relay-race-book/internal/domain/port/usecase"
)

// Menu options
const (
	OptionAddSprinter  = "1"
	OptionAtMost       = "2"
	OptionAtLeast      = "3"
	OptionListAll      = "4"
	OptionAddTime      = "5"
	OptionSubtractTime = "6"
	OptionBest         = "7"
	OptionExit         = "x"
)

var menuLines = []string{
	OptionAddSprinter + " Add sprinter",
	OptionAtMost + " Display sprinters with running time less than or equal to the given time",
	OptionAtLeast + " Display sprinters with running time greater than or equal to the given time",
	OptionListAll + " Display all sprinters",
	OptionAddTime + " Add time to the running time of a sprinter found by name",
	OptionSubtractTime + " Subtract time from the running time of a sprinter found by name",
	OptionBest + " Display the best sprinter",
	"To exit insert '" + OptionExit + "'",
}

type styles struct {
	title  lipgloss.Style
	prompt lipgloss.Style
	item   lipgloss.Style
	errMsg lipgloss.Style
	help   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true),
		prompt: r.NewStyle().
			Foreground(lipgloss.Color("170")),
		item: r.NewStyle().
			PaddingLeft(2),
		errMsg: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		help: r.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// Console is a line-oriented menu over the race book
type Console struct {
	raceBook usecase.RaceBookUseCase
	logger   coreport.Logger
	scanner  *bufio.Scanner
	out      io.Writer
	styles   styles

	// lines is fed by the reader goroutine and closed at end of input.
	// readErr is set before lines is closed.
	lines   chan string
	readErr error
}

// NewConsole creates a console reading commands from in and writing to out
func NewConsole(raceBook usecase.RaceBookUseCase, logger coreport.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		raceBook: raceBook,
		logger:   logger,
		scanner:  bufio.NewScanner(in),
		out:      out,
		styles:   newStyles(lipgloss.NewRenderer(out)),
	}
}

// Run shows the menu and serves commands until 'x', end of input or ctx is done.
// Cancellation is noticed while waiting for input; Run then returns ctx.Err()
// without waiting for the pending read to complete.
func (c *Console) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	c.startReader(done)

	c.println(c.styles.title.Render("Hello from the relay race book"))
	for _, line := range menuLines {
		c.println(c.styles.help.Render(line))
	}

	option, ok := c.readLine(ctx)
	for ok {
		switch option {
		case OptionAddSprinter:
			c.addSprinter(ctx)
		case OptionAtMost, OptionAtLeast:
			c.filterSprinters(ctx, option == OptionAtMost)
		case OptionListAll:
			c.listSprinters(ctx)
		case OptionAddTime, OptionSubtractTime:
			c.modifyTime(ctx, option == OptionAddTime)
		case OptionBest:
			c.bestSprinter(ctx)
		case OptionExit:
			return nil
		default:
			c.println(c.styles.errMsg.Render("Invalid operation"))
		}

		c.println(c.styles.prompt.Render("Select operation"))
		option, ok = c.readLine(ctx)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return c.readErr
}

func (c *Console) addSprinter(ctx context.Context) {
	answers, ok := c.askAll(ctx,
		"Insert first name:",
		"Insert last name:",
		"Insert sprinter's running time in format: h:mm:ss",
	)
	if !ok {
		return
	}
	firstName, lastName, runningTime := answers[0], answers[1], answers[2]

	sprinter, err := c.raceBook.AddSprinter(ctx, firstName, lastName, runningTime)
	if err != nil {
		c.invalidInput(err)
		return
	}
	c.println("Added " + sprinter.String())
}

func (c *Console) filterSprinters(ctx context.Context, atMost bool) {
	answers, ok := c.askAll(ctx, "Insert running time in format: h:mm:ss")
	if !ok {
		return
	}
	limit := answers[0]

	var (
		sprinters []*entity.Sprinter
		err       error
	)
	if atMost {
		sprinters, err = c.raceBook.SprintersAtMost(ctx, limit)
	} else {
		sprinters, err = c.raceBook.SprintersAtLeast(ctx, limit)
	}
	if err != nil {
		c.invalidInput(err)
		return
	}

	if len(sprinters) == 0 {
		c.println("No matching sprinters")
		return
	}
	c.printSprinters(sprinters)
}

func (c *Console) listSprinters(ctx context.Context) {
	sprinters, err := c.raceBook.ListSprinters(ctx)
	if err != nil {
		c.invalidInput(err)
		return
	}

	c.println(c.styles.title.Render("List of sprinters"))
	if len(sprinters) == 0 {
		c.println("No sprinters yet, try to add some")
		return
	}
	c.printSprinters(sprinters)
}

func (c *Console) modifyTime(ctx context.Context, add bool) {
	deltaPrompt := "Insert time to subtract from the sprinter's running time in format: h:mm:ss"
	if add {
		deltaPrompt = "Insert time to add to the sprinter's running time in format: h:mm:ss"
	}

	answers, ok := c.askAll(ctx, "Insert sprinter first name:", "Insert sprinter last name:", deltaPrompt)
	if !ok {
		return
	}
	firstName, lastName, delta := answers[0], answers[1], answers[2]

	var (
		sprinter *entity.Sprinter
		err      error
	)
	if add {
		sprinter, err = c.raceBook.AddTime(ctx, firstName, lastName, delta)
	} else {
		sprinter, err = c.raceBook.SubtractTime(ctx, firstName, lastName, delta)
	}
	if err != nil {
		c.invalidInput(err)
		return
	}
	c.println("Updated " + sprinter.String())
}

func (c *Console) bestSprinter(ctx context.Context) {
	sprinter, err := c.raceBook.BestSprinter(ctx)
	if err != nil {
		c.invalidInput(err)
		return
	}
	c.println(c.styles.title.Render("The best sprinter"))
	c.println(c.styles.item.Render(sprinter.String()))
}

func (c *Console) printSprinters(sprinters []*entity.Sprinter) {
	for _, sprinter := range sprinters {
		c.println(c.styles.item.Render(sprinter.String()))
	}
}

// invalidInput reports a failed command; the menu loop carries on
func (c *Console) invalidInput(err error) {
	c.logger.Debug("Console command failed", map[string]any{
		"error": err.Error(),
	})
	c.println(c.styles.errMsg.Render("Invalid input: " + err.Error()))
}

// askAll prints each prompt and reads its answer.
// Answers missing at end of input read as empty text; ok is false only when ctx is done.
func (c *Console) askAll(ctx context.Context, prompts ...string) (answers []string, ok bool) {
	answers = make([]string, len(prompts))
	for i, prompt := range prompts {
		c.println(c.styles.prompt.Render(prompt))
		answers[i], _ = c.readLine(ctx)
		if ctx.Err() != nil {
			return nil, false
		}
	}
	return answers, true
}

// startReader scans input on its own goroutine so a blocked read never delays cancellation
func (c *Console) startReader(done <-chan struct{}) {
	lines := make(chan string)
	c.lines = lines

	go func() {
		defer close(lines)
		for c.scanner.Scan() {
			select {
			case lines <- strings.TrimRight(c.scanner.Text(), "\r"):
			case <-done:
				return
			}
		}
		c.readErr = c.scanner.Err()
	}()
}

// readLine returns the next input line; ok is false at end of input or once ctx is done
func (c *Console) readLine(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	select {
	case line, open := <-c.lines:
		return line, open
	case <-ctx.Done():
		return "", false
	}
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}
