package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/j0lvera/botcenter/internal/bot"
	"github.com/rs/zerolog"
)

const (
	invalidChoice      = "Invalid choice."
	weatherUnavailable = "Weather service currently unavailable."
	backCommand        = "back"
)

// State of the command dispatcher.
type State int

const (
	MenuPrompt State = iota
	ChatSession
	WeatherRequest
	TravelRequest
	Exit
)

func (s State) String() string {
	switch s {
	case MenuPrompt:
		return "menu_prompt"
	case ChatSession:
		return "chat_session"
	case WeatherRequest:
		return "weather_request"
	case TravelRequest:
		return "travel_request"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Chatter is the chat bot as the dispatcher sees it.
type Chatter interface {
	Name() string
	Introduce() string
	Respond(input string) string
}

// Reporter is the weather bot as the dispatcher sees it.
type Reporter interface {
	FetchLiveWeather(ctx context.Context) (bot.Report, error)
}

// Advisor is the travel bot as the dispatcher sees it.
type Advisor interface {
	Introduce() string
	AdviseFor(city string) (bot.Advice, error)
}

// Dispatcher runs the menu loop and routes each choice to its bot.
// Everything runs on the caller's goroutine, one step at a time.
type Dispatcher struct {
	in     LineReader
	out    io.Writer
	styles Styles

	chat    Chatter
	weather Reporter
	travel  Advisor

	logger *zerolog.Logger
}

// NewDispatcher creates a Dispatcher reading from in and writing to out.
func NewDispatcher(
	in LineReader,
	out io.Writer,
	chat Chatter,
	weather Reporter,
	travel Advisor,
	logger *zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		in:      in,
		out:     out,
		styles:  NewStyles(out),
		chat:    chat,
		weather: weather,
		travel:  travel,
		logger:  logger,
	}
}

// Run loops from MenuPrompt until Exit. End of input at any prompt and
// a canceled ctx both end the loop without error.
func (d *Dispatcher) Run(ctx context.Context) error {
	state := MenuPrompt

	for state != Exit {
		if ctx.Err() != nil {
			d.logger.Debug().Stringer("state", state).Msg("dispatcher canceled")
			return nil
		}

		next, err := d.Step(ctx, state)
		if errors.Is(err, io.EOF) {
			d.logger.Debug().Stringer("state", state).Msg("end of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("dispatcher %s: %w", state, err)
		}

		if next != state {
			d.logger.Debug().
				Stringer("from", state).
				Stringer("to", next).
				Msg("state transition")
		}
		state = next
	}

	return nil
}

// Step performs the work of one state and returns the next one.
func (d *Dispatcher) Step(ctx context.Context, state State) (State, error) {
	switch state {
	case MenuPrompt:
		return d.menu()
	case ChatSession:
		return d.chatTurn()
	case WeatherRequest:
		return d.weatherRequest(ctx)
	case TravelRequest:
		return d.travelRequest()
	default:
		return Exit, nil
	}
}

// Close releases the input, restoring the terminal if needed.
func (d *Dispatcher) Close() error {
	return d.in.Close()
}

func (d *Dispatcher) menu() (State, error) {
	d.println("")
	d.println(d.styles.Header.Render("--- Bot Command Center ---"))
	d.println("1. Talk to ChatBot")
	d.println("2. Get Live Weather")
	d.println("3. Get Travel Tips")
	d.println("4. Exit")

	choice, err := d.in.ReadLine("Choice: ")
	if err != nil {
		return MenuPrompt, err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		d.status("Chat session started.")
		d.println(d.chat.Introduce())
		return ChatSession, nil
	case "2":
		d.status("Weather report requested.")
		return WeatherRequest, nil
	case "3":
		d.status("Travel guide opened.")
		return TravelRequest, nil
	case "4":
		return Exit, nil
	default:
		d.println(d.styles.Warning.Render(invalidChoice))
		return MenuPrompt, nil
	}
}

func (d *Dispatcher) chatTurn() (State, error) {
	msg, err := d.in.ReadLine("You: ")
	if err != nil {
		return ChatSession, err
	}

	if strings.EqualFold(strings.TrimSpace(msg), backCommand) {
		return MenuPrompt, nil
	}

	reply := d.chat.Respond(msg)
	d.println(d.styles.Reply.Render(fmt.Sprintf("[%s]: %s", d.chat.Name(), reply)))
	return ChatSession, nil
}

func (d *Dispatcher) weatherRequest(ctx context.Context) (State, error) {
	report, err := d.weather.FetchLiveWeather(ctx)
	if err != nil {
		d.println(d.styles.Warning.Render(weatherUnavailable))
		return MenuPrompt, nil
	}

	d.println("")
	d.println(d.styles.Header.Render(fmt.Sprintf("--- LIVE WEATHER: %s ---", report.Region)))
	d.println(fmt.Sprintf("Temperature: %s°F", strconv.FormatFloat(report.TemperatureFahrenheit, 'f', -1, 64)))
	d.println(d.styles.Rule.Render("-------------------------------"))
	return MenuPrompt, nil
}

func (d *Dispatcher) travelRequest() (State, error) {
	d.println(d.travel.Introduce())

	city, err := d.in.ReadLine("Enter a city: ")
	if err != nil {
		return TravelRequest, err
	}

	advice, err := d.travel.AdviseFor(city)
	var unknown *bot.UnknownCityError
	switch {
	case errors.As(err, &unknown):
		d.println(unknown.Error())
		return MenuPrompt, nil
	case err != nil:
		return MenuPrompt, err
	}

	d.println("")
	d.println(d.styles.Header.Render(fmt.Sprintf("--- Travel Tip for %s ---", advice.City)))
	d.println("Pro-Tip: " + advice.Tip)
	d.println(d.styles.Rule.Render("------------------------------"))
	return MenuPrompt, nil
}

func (d *Dispatcher) status(msg string) {
	d.println(d.styles.Status.Render("Status: " + msg))
}

func (d *Dispatcher) println(line string) {
	fmt.Fprintln(d.out, line)
}
