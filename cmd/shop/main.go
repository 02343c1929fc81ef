package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/eshoplabs/go-shop-state/internal/cart"
	"github.com/eshoplabs/go-shop-state/internal/catalog"
	"github.com/eshoplabs/go-shop-state/internal/config"
	"github.com/eshoplabs/go-shop-state/internal/i18n"
	"github.com/eshoplabs/go-shop-state/internal/model"
	"github.com/eshoplabs/go-shop-state/internal/order"
	"github.com/eshoplabs/go-shop-state/internal/session"
	"github.com/eshoplabs/go-shop-state/internal/storage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	kv, err := openBacking(cfg.Storage)
	if err != nil {
		log.Error("open storage backing", "error", err)
		os.Exit(1)
	}
	defer kv.Close()
	log.Info("storage ready", "backend", cfg.Storage.Backend)

	// Stores, constructed once and passed by reference.
	translator := i18n.New(kv, log, i18n.Locale(cfg.Locale.Default))
	sessions := session.New(kv, log, session.Options{
		AdminUsername: cfg.Auth.AdminUsername,
		AdminPassword: cfg.Auth.AdminPassword,
		AdminEmail:    cfg.Auth.AdminEmail,
		TokenSecret:   cfg.Auth.TokenSecret,
		AccessTTL:     cfg.Auth.AccessTTL,
		RefreshTTL:    cfg.Auth.RefreshTTL,
	})
	carts := cart.New(kv, log, sessions)
	orders := order.New(kv, log)
	products := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
		kv.Close()
		os.Exit(0)
	}()

	ui := &console{
		ctx:        ctx,
		translator: translator,
		sessions:   sessions,
		carts:      carts,
		orders:     orders,
		products:   products,
	}
	ui.run(os.Stdin, os.Stdout)
}

func openBacking(cfg config.StorageConfig) (storage.KV, error) {
	switch cfg.Backend {
	case "sqlite":
		return storage.OpenSQLite(cfg.Path)
	case "redis":
		return storage.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "memory":
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// console is a line-oriented storefront standing in for the routed pages of
// the web UI: a consumer of the stores, never a holder of its own state.
type console struct {
	ctx        context.Context
	translator *i18n.Translator
	sessions   *session.Store
	carts      *cart.Store
	orders     *order.Store
	products   *catalog.Client
}

func (c *console) run(in *os.File, out *os.File) {
	fmt.Fprintln(out, c.translator.T("hero.welcome"))
	fmt.Fprintln(out, `type "help" for commands`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			c.help(out)
		case "products":
			c.listProducts(out)
		case "add":
			c.addToCart(out, args)
		case "cart":
			c.showCart(out)
		case "qty":
			c.updateQuantity(out, args)
		case "remove":
			c.removeFromCart(out, args)
		case "clear":
			c.carts.ClearCart()
		case "checkout":
			c.checkout(out, scanner)
		case "register":
			c.register(out, args)
		case "login":
			c.login(out, args)
		case "logout":
			c.sessions.Logout()
		case "orders":
			c.listOrders(out)
		case "lang":
			c.setLanguage(out, args)
		case "newproduct":
			c.createProduct(out, scanner)
		case "delproduct":
			c.deleteProduct(out, args)
		case "exit", "quit":
			return
		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
		}
	}
}

func (c *console) help(out *os.File) {
	fmt.Fprintln(out, `products                     list the catalog
add <id> [qty]               add a product to the cart
cart                         show the cart
qty <id> <n>                 change a line quantity
remove <id>                  drop a line
clear                        empty the cart
checkout                     place an order
register <user> <email> <pw> create an account
login <user> <pw>            start a session
logout                       end the session
orders                       list your orders
lang <th|en>                 switch language
newproduct                   add a catalog product (admin)
delproduct <id>              delete a catalog product (admin)
exit                         leave`)
}

func (c *console) listProducts(out *os.File) {
	items, err := c.products.List(c.ctx)
	if err != nil {
		fmt.Fprintln(out, c.catalogMessage(err))
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(out, c.translator.T("products.noProducts"))
		return
	}
	for _, p := range items {
		fmt.Fprintf(out, "%3d  %-30s %10s\n", p.ID, p.Name, p.Price.StringFixed(2))
	}
}

func (c *console) addToCart(out *os.File, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(out, "usage: add <id> [qty]")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(out, "usage: add <id> [qty]")
		return
	}
	qty := 1
	if len(args) > 1 {
		if q, err := strconv.Atoi(args[1]); err == nil {
			qty = q
		}
	}
	items, err := c.products.List(c.ctx)
	if err != nil {
		fmt.Fprintln(out, c.catalogMessage(err))
		return
	}
	for _, p := range items {
		if p.ID == id {
			c.carts.AddToCart(p, qty)
			fmt.Fprintln(out, c.translator.T("products.addedToCart"))
			return
		}
	}
	fmt.Fprintln(out, c.translator.T("productDetail.notFound"))
}

func (c *console) showCart(out *os.File) {
	lines := c.carts.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(out, c.translator.T("cart.empty"))
		return
	}
	for _, line := range lines {
		fmt.Fprintf(out, "%3d  %-30s x%-3d %10s\n",
			line.Product.ID, line.Product.Name, line.Quantity, line.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(out, "%s: %s (%d %s)\n",
		c.translator.T("cart.total"), c.carts.Total().StringFixed(2),
		c.carts.Count(), c.translator.T("cart.items"))
}

func (c *console) updateQuantity(out *os.File, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: qty <id> <n>")
		return
	}
	id, err1 := strconv.Atoi(args[0])
	qty, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Fprintln(out, "usage: qty <id> <n>")
		return
	}
	c.carts.UpdateQuantity(id, qty)
}

func (c *console) removeFromCart(out *os.File, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: remove <id>")
		return
	}
	if id, err := strconv.Atoi(args[0]); err == nil {
		c.carts.RemoveFromCart(id)
	}
}

func (c *console) checkout(out *os.File, scanner *bufio.Scanner) {
	user := c.sessions.CurrentUser()
	if user == nil {
		fmt.Fprintln(out, c.translator.T("nav.login"))
		return
	}
	if c.carts.Count() == 0 {
		fmt.Fprintln(out, c.translator.T("cart.empty"))
		return
	}

	shipping, ok := c.sessions.UserAddress()
	if ok {
		fmt.Fprintf(out, "%s: %s, %s, %s %s (%s) [y/n]? ",
			c.translator.T("checkout.shippingInfo"),
			shipping.FullName, shipping.Address, shipping.City, shipping.PostalCode, shipping.Phone)
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "y" {
			ok = false
		}
	}
	if !ok {
		shipping = c.promptShipping(out, scanner)
		if err := shipping.Validate(); err != nil {
			fmt.Fprintln(out, c.translator.T("checkout.fillAllFields"))
			return
		}
		c.sessions.SaveUserAddress(shipping)
	}

	placed, err := c.orders.CreateOrder(user.ID, c.carts.Lines(), shipping)
	if err != nil {
		fmt.Fprintln(out, c.translator.T("checkout.orderError"))
		return
	}
	c.carts.ClearCart()
	fmt.Fprintf(out, "%s %s\n", c.translator.T("checkout.orderSuccess"), placed.ID)
}

func (c *console) promptShipping(out *os.File, scanner *bufio.Scanner) model.ShippingInfo {
	prompt := func(key string) string {
		fmt.Fprintf(out, "%s: ", c.translator.T(key))
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}
	return model.ShippingInfo{
		FullName:   prompt("checkout.fullName"),
		Address:    prompt("checkout.address"),
		City:       prompt("checkout.city"),
		PostalCode: prompt("checkout.postalCode"),
		Phone:      prompt("checkout.phone"),
	}
}

func (c *console) register(out *os.File, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(out, "usage: register <user> <email> <pw>")
		return
	}
	result := c.sessions.Register(args[0], args[1], args[2])
	fmt.Fprintln(out, c.translator.T(result.MessageKey))
}

func (c *console) login(out *os.File, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: login <user> <pw>")
		return
	}
	if c.sessions.Login(args[0], args[1]) {
		fmt.Fprintln(out, c.translator.T("common.success"))
	} else {
		fmt.Fprintln(out, c.translator.T("common.error"))
	}
}

func (c *console) listOrders(out *os.File) {
	user := c.sessions.CurrentUser()
	if user == nil {
		fmt.Fprintln(out, c.translator.T("nav.login"))
		return
	}
	placed := c.orders.UserOrders(user.ID)
	if len(placed) == 0 {
		fmt.Fprintln(out, c.translator.T("orders.noOrders"))
		return
	}
	for _, o := range placed {
		fmt.Fprintf(out, "%s  %s  %-10s %10s\n",
			o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Status, o.Total.StringFixed(2))
	}
}

func (c *console) setLanguage(out *os.File, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: lang <th|en>")
		return
	}
	c.translator.SetLocale(i18n.Locale(args[0]))
}

func (c *console) createProduct(out *os.File, scanner *bufio.Scanner) {
	if !c.sessions.IsAdmin() {
		fmt.Fprintln(out, c.translator.T("nav.admin"))
		return
	}
	prompt := func(key string) string {
		fmt.Fprintf(out, "%s: ", c.translator.T(key))
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}
	draft := catalog.Draft{
		Name:        prompt("admin.productName"),
		Description: prompt("admin.description"),
		ImageURL:    prompt("admin.imageUrl"),
	}
	price, err := strconv.ParseFloat(prompt("admin.price"), 64)
	if err != nil || draft.Name == "" || draft.Description == "" || draft.ImageURL == "" {
		fmt.Fprintln(out, c.translator.T("admin.fillAllFields"))
		return
	}
	draft.Price = decimal.NewFromFloat(price)
	created, cerr := c.products.Create(c.ctx, draft)
	if cerr != nil {
		fmt.Fprintln(out, c.translator.T("admin.errorAdd"))
		return
	}
	fmt.Fprintf(out, "%s (id %d)\n", c.translator.T("admin.productAdded"), created.ID)
}

func (c *console) deleteProduct(out *os.File, args []string) {
	if !c.sessions.IsAdmin() {
		fmt.Fprintln(out, c.translator.T("nav.admin"))
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: delproduct <id>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(out, "usage: delproduct <id>")
		return
	}
	deleted, derr := c.products.Delete(c.ctx, id)
	if derr != nil || !deleted {
		fmt.Fprintln(out, c.translator.T("admin.cannotDelete"))
		return
	}
	fmt.Fprintln(out, c.translator.T("admin.productDeleted"))
}

// catalogMessage maps a catalog failure class onto the storefront's
// user-facing error strings.
func (c *console) catalogMessage(err error) string {
	var reqErr *catalog.RequestError
	if !errors.As(err, &reqErr) {
		return c.translator.T("products.errorLoad")
	}
	switch reqErr.Class {
	case catalog.ClassUnreachable:
		return c.translator.T("products.errorConnect")
	case catalog.ClassNotFound:
		return c.translator.T("products.errorNotFound")
	case catalog.ClassServer:
		return c.translator.T("products.errorServer")
	default:
		return c.translator.T("products.errorLoad")
	}
}
