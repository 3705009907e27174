package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"motovasiya/internal/flow"
	"motovasiya/pkg/client"
	"motovasiya/pkg/config"
	apperrors "motovasiya/pkg/errors"
	"motovasiya/pkg/model"
	"motovasiya/pkg/sealer"
)

const ServiceName = "kiosk"

// The kiosk is the terminal booking wizard: the same flow the web front-end
// drives, over either the REST backend or the local file store.
type kiosk struct {
	cfg       *config.Config
	api       client.API
	state     *flow.AppState
	router    *flow.Router
	submitter *flow.Submitter
	schedule  flow.Schedule
	sealer    *sealer.Sealer
	in        *bufio.Scanner

	lastBookingID string
}

func main() {
	cfg := config.Load(ServiceName)

	api, err := selectAPI(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize backend client", "error", err)
	}

	k := &kiosk{
		cfg:       cfg,
		api:       api,
		state:     flow.NewAppState(),
		router:    flow.NewRouter(),
		submitter: flow.NewSubmitter(api, cfg.Log),
		schedule: flow.Schedule{
			TimeSlots:     cfg.TimeSlots,
			LookaheadDays: cfg.LookaheadDays,
		},
		sealer: sealer.New(cfg.AuthSecret),
		in:     bufio.NewScanner(os.Stdin),
	}

	ctx := context.Background()
	if err := k.state.Load(ctx, api); err != nil {
		cfg.Log.Fatal("Failed to load instructors and motorcycles", "error", err)
	}

	k.run(ctx)
}

func selectAPI(cfg *config.Config) (client.API, error) {
	if baseURL := os.Getenv("BACKEND_URL"); baseURL != "" {
		cfg.Log.Info("Using REST backend", "base_url", baseURL)
		return client.NewRestAPI(baseURL), nil
	}

	path := os.Getenv("LOCAL_STORE_PATH")
	if path == "" {
		path = "motovasiya-store.json"
	}
	cfg.Log.Info("Using local store", "path", path)
	return client.NewLocalAPIFromFile(path, cfg.Log)
}

func (k *kiosk) run(ctx context.Context) {
	for {
		switch k.router.Current() {
		case flow.ViewLanding:
			if done := k.landing(); done {
				return
			}
		case flow.ViewBooking:
			k.bookingWizard(ctx)
		case flow.ViewSuccess:
			k.success()
		case flow.ViewLogin:
			k.login(ctx)
		case flow.ViewAdmin:
			k.admin(ctx)
		}
	}
}

func (k *kiosk) landing() bool {
	fmt.Println()
	fmt.Println("=== Motovasiya riding school ===")
	fmt.Println("  1) Book a lesson")
	fmt.Println("  2) Instructor login")
	fmt.Println("  q) Quit")

	switch k.prompt("> ") {
	case "1":
		k.router.StartBooking()
	case "2":
		k.router.ShowLogin()
	case "q":
		return true
	}
	return false
}

func (k *kiosk) bookingWizard(ctx context.Context) {
	draft := flow.NewDraft(k.schedule)

	if !k.pickMotorcycle(draft) || !k.pickInstructor(draft) ||
		!k.pickDate(draft) || !k.pickTime(draft) || !k.enterCustomer(draft) {
		k.router.BackToLanding()
		return
	}

	booking, err := k.submitter.Submit(ctx, draft)
	if err != nil {
		fmt.Printf("Booking failed: %s\n", errorMessage(err))
		k.router.BackToLanding()
		return
	}

	k.state.AddBooking(booking)
	k.lastBookingID = booking.ID
	k.router.BookingSucceeded(booking)
}

func (k *kiosk) pickMotorcycle(draft *flow.Draft) bool {
	motorcycles := k.state.Motorcycles()
	fmt.Println("\nChoose a motorcycle:")
	for i, m := range motorcycles {
		fmt.Printf("  %d) %s - %s\n", i+1, m.Name, m.Description)
	}

	idx, ok := k.pickIndex(len(motorcycles))
	if !ok {
		return false
	}
	if err := draft.SelectMotorcycle(motorcycles[idx].ID); err != nil {
		fmt.Println(err)
		return false
	}
	return true
}

func (k *kiosk) pickInstructor(draft *flow.Draft) bool {
	instructors := k.state.Instructors()
	fmt.Println("\nChoose an instructor:")
	for i, in := range instructors {
		fmt.Printf("  %d) %s %s\n", i+1, in.Name, in.Surname)
	}

	idx, ok := k.pickIndex(len(instructors))
	if !ok {
		return false
	}
	if err := draft.SelectInstructor(instructors[idx].ID); err != nil {
		fmt.Println(err)
		return false
	}
	return true
}

func (k *kiosk) pickDate(draft *flow.Draft) bool {
	dates := k.schedule.Dates(time.Now())
	fmt.Println("\nChoose a date:")
	shown := dates
	if len(shown) > 7 {
		shown = dates[:7]
		fmt.Println("  (first week shown; type any date in the window as YYYY-MM-DD)")
	}
	for i, d := range shown {
		fmt.Printf("  %d) %s\n", i+1, d)
	}

	answer := k.prompt("> ")
	if answer == "" {
		return false
	}

	date := answer
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(shown) {
		date = shown[n-1]
	}
	if err := draft.SelectDate(date); err != nil {
		fmt.Println(errorMessage(err))
		return false
	}
	return true
}

func (k *kiosk) pickTime(draft *flow.Draft) bool {
	bookings := k.state.Bookings()
	busy := flow.BusySlots(bookings, k.schedule, draft.Date(), draft.InstructorID())
	busySet := make(map[string]bool, len(busy))
	for _, b := range busy {
		busySet[b] = true
	}

	fmt.Println("\nChoose a time slot:")
	for i, slot := range k.schedule.TimeSlots {
		marker := ""
		if busySet[slot] {
			marker = "  (taken)"
		}
		fmt.Printf("  %d) %s%s\n", i+1, slot, marker)
	}

	idx, ok := k.pickIndex(len(k.schedule.TimeSlots))
	if !ok {
		return false
	}
	if err := draft.SelectTime(bookings, k.schedule.TimeSlots[idx]); err != nil {
		fmt.Println(errorMessage(err))
		return false
	}
	return true
}

func (k *kiosk) enterCustomer(draft *flow.Draft) bool {
	fmt.Println("\nRider details:")
	customer := model.Customer{
		Name:    k.prompt("Name: "),
		Surname: k.prompt("Surname: "),
		Gender:  k.prompt("Gender (Male/Female/Other): "),
		Phone:   k.prompt("Phone (+994...): "),
	}
	customer.Age, _ = strconv.Atoi(k.prompt("Age: "))
	customer.HeightCm, _ = strconv.Atoi(k.prompt("Height in cm: "))

	if err := draft.SetCustomer(customer); err != nil {
		fmt.Printf("Details rejected: %s\n", err)
		return false
	}
	return true
}

func (k *kiosk) success() {
	summary := k.router.Summary()
	fmt.Println("\n=== Booking confirmed ===")
	fmt.Printf("Thank you, %s! See you on %s at %s.\n",
		summary.CustomerName, summary.Date, summary.TimeSlot)
	if code, err := k.sealer.Seal(k.lastBookingID, summary.Date); err == nil {
		fmt.Printf("Your confirmation code: %s\n", code)
	}
	k.prompt("Press enter to continue...")
	k.router.BackToLanding()
}

func (k *kiosk) login(ctx context.Context) {
	email := k.prompt("\nInstructor email (empty to go back): ")
	if email == "" {
		k.router.BackToLanding()
		return
	}

	session, err := k.api.Login(ctx, email)
	if err != nil {
		fmt.Printf("Login failed: %s\n", errorMessage(err))
		return
	}

	k.router.LoggedIn(session)
	fmt.Printf("Welcome, %s %s!\n", session.Instructor.Name, session.Instructor.Surname)
}

func (k *kiosk) admin(ctx context.Context) {
	fmt.Printf("\n=== Dashboard (%s) ===\n", strings.Join(k.router.Tabs(), " | "))
	fmt.Println("  1) Show requests")
	if k.router.IsAdmin() {
		fmt.Println("  2) Toggle instructor status")
	}
	fmt.Println("  l) Logout")

	switch k.prompt("> ") {
	case "1":
		k.showRequests(ctx)
	case "2":
		if k.router.IsAdmin() {
			k.toggleInstructor(ctx)
		}
	case "l":
		k.router.Logout()
	}
}

func (k *kiosk) showRequests(ctx context.Context) {
	bookings, err := k.api.ListBookings(ctx)
	if err != nil {
		fmt.Printf("Could not load requests: %s\n", errorMessage(err))
		return
	}
	k.state.SetBookings(bookings)

	visible := k.router.VisibleBookings(bookings)
	if len(visible) == 0 {
		fmt.Println("No booking requests.")
		return
	}
	for _, b := range visible {
		fmt.Printf("  [%s] %s %s on %s at %s (%s)\n",
			b.Status, b.Customer.Name, b.Customer.Surname, b.Date, b.TimeSlot, b.ID)
	}
}

func (k *kiosk) toggleInstructor(ctx context.Context) {
	instructors, err := k.api.ListAllInstructors(ctx)
	if err != nil {
		fmt.Printf("Could not load instructors: %s\n", errorMessage(err))
		return
	}
	for i, in := range instructors {
		fmt.Printf("  %d) %s %s (active=%v)\n", i+1, in.Name, in.Surname, in.Active)
	}

	idx, ok := k.pickIndex(len(instructors))
	if !ok {
		return
	}
	updated, err := k.api.ToggleInstructorStatus(ctx, instructors[idx].ID)
	if err != nil {
		fmt.Printf("Toggle failed: %s\n", errorMessage(err))
		return
	}
	k.state.UpsertInstructor(updated)
	fmt.Printf("%s %s is now active=%v\n", updated.Name, updated.Surname, updated.Active)
}

func (k *kiosk) pickIndex(n int) (int, bool) {
	answer := k.prompt("> ")
	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 1 || idx > n {
		return 0, false
	}
	return idx - 1, true
}

func (k *kiosk) prompt(label string) string {
	fmt.Print(label)
	if !k.in.Scan() {
		return ""
	}
	return strings.TrimSpace(k.in.Text())
}

func errorMessage(err error) string {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}
