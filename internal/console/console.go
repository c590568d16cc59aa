package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"restodash/internal/auth"
	"restodash/internal/store"
)

// Console is one admin session over the store, the terminal analog of the
// original single-page app: a long-lived loop that routes commands to store
// mutations and renders whatever toasts they raised.
type Console struct {
	store *store.Store
	auth  *auth.Service
	reset *auth.ResetWizard
	in    *bufio.Scanner
	out   io.Writer
}

func New(st *store.Store, svc *auth.Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		store: st,
		auth:  svc,
		reset: auth.NewResetWizard(svc),
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run reads commands until quit, EOF, or a cancelled context.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "restodash admin console. Type 'help' for commands.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, c.prompt())
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" || line == "q" {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}

		c.dispatch(ctx, line)
		c.renderToasts()
	}
}

func (c *Console) prompt() string {
	if loggedIn, user := c.store.Session(); loggedIn && user != nil {
		return fmt.Sprintf("%s> ", user.Email)
	}
	return "> "
}

func (c *Console) dispatch(ctx context.Context, line string) {
	fields := splitCommand(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "help":
		c.printHelp()
	case "login":
		c.cmdLogin(ctx, args)
	case "signup":
		c.cmdSignup(ctx, args)
	case "forgot":
		c.cmdForgot(ctx, args)
	case "logout":
		c.cmdLogout(ctx)
	case "whoami":
		c.cmdWhoami()
	case "theme":
		c.cmdTheme(ctx)
	case "sidebar":
		c.cmdSidebar(ctx)
	case "menu":
		c.gated(func() { c.cmdMenu(ctx, args) })
	case "categories":
		c.gated(func() { c.cmdCategories(ctx, args) })
	case "users":
		c.gated(func() { c.cmdUsers(ctx, args) })
	case "profile":
		c.gated(func() { c.cmdProfile(ctx, args) })
	case "notifications":
		c.gated(func() { c.cmdNotifications(ctx, args) })
	case "orders":
		c.gated(func() { c.cmdOrders(ctx, args) })
	case "reports":
		c.gated(func() { c.cmdReports(args) })
	case "settings":
		c.gated(func() { c.cmdSettings(ctx, args) })
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
	}
}

// gated is the login guard in front of every admin screen.
func (c *Console) gated(run func()) {
	if loggedIn, _ := c.store.Session(); !loggedIn {
		c.store.AddToast("Please login first", "error", 0)
		return
	}
	run()
}

// renderToasts prints and dismisses pending toasts, the console stand-in
// for the toast banner stack.
func (c *Console) renderToasts() {
	for _, t := range c.store.Toasts() {
		fmt.Fprintf(c.out, "[%s] %s\n", t.Type, t.Message)
		c.store.RemoveToast(t.ID)
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Commands:
  login email=... password=...
  signup name=... email=... password=... confirm=... agree=yes
  forgot email=... | forgot code=... | forgot password=... confirm=...
  logout | whoami | theme | sidebar
  menu list | menu add name=... category=... price=... [description=...] [image=...] [status=...]
  menu update id=N [field=...]... | menu delete id=N
  categories list | categories add name=... | categories rename old=... new=... | categories delete name=...
  users list | users add name=... email=... password=... [role=...] | users update id=N [field=...]... | users delete id=N
  profile update [name=...] [phone=...] [address=...] | profile photo url=...
  notifications list | notifications add title=... message=... [type=...]
  notifications read id=... | notifications read-all | notifications clear | notifications delete id=... | notifications unread
  orders list [page=N] | orders view id=N | orders status id=N status=...
  reports [export=FILE]
  settings show | settings save [field=...]... | settings 2fa
  quit
`)
}
