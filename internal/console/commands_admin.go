package console

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"restodash/internal/auth"
	"restodash/internal/models"
	"restodash/internal/reports"
)

func (c *Console) cmdMenu(ctx context.Context, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}
	f := parseForm(args[1:])

	switch args[0] {
	case "list":
		w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTATUS\tUPDATED")
		for _, item := range c.store.MenuItems() {
			fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%s\t%s\n",
				item.ID, item.Name, item.Category, item.Price, item.Status, item.UpdatedAt)
		}
		w.Flush()
	case "add":
		if f.get("name") == "" || f.get("category") == "" {
			c.store.AddToast("Please fill in all fields", models.ToastError, 0)
			return
		}
		price, err := f.price("price")
		if err != nil {
			c.store.AddToast(err.Error(), models.ToastError, 0)
			return
		}
		status := f.get("status")
		if status == "" {
			status = models.MenuStatusAvailable
		}
		item := c.store.AddMenuItem(models.MenuItemInput{
			Name:        f.get("name"),
			Category:    f.get("category"),
			Description: f.get("description"),
			Price:       price,
			Image:       f.get("image"),
			Status:      status,
		})
		c.store.AddToast(fmt.Sprintf("Added %q to the menu", item.Name), models.ToastSuccess, 0)
	case "update":
		id, err := f.id("id")
		if err != nil {
			c.store.AddToast(err.Error(), models.ToastError, 0)
			return
		}
		var patch models.MenuItemPatch
		if f.has("name") {
			v := f.get("name")
			patch.Name = &v
		}
		if f.has("category") {
			v := f.get("category")
			patch.Category = &v
		}
		if f.has("description") {
			v := f.get("description")
			patch.Description = &v
		}
		if f.has("image") {
			v := f.get("image")
			patch.Image = &v
		}
		if f.has("status") {
			v := f.get("status")
			patch.Status = &v
		}
		if f.has("price") {
			price, err := f.price("price")
			if err != nil {
				c.store.AddToast(err.Error(), models.ToastError, 0)
				return
			}
			patch.Price = &price
		}
		c.store.UpdateMenuItem(id, patch)
		c.store.AddToast("Menu item updated", models.ToastSuccess, 0)
	case "delete":
		id, err := f.id("id")
		if err != nil {
			c.store.AddToast(err.Error(), models.ToastError, 0)
			return
		}
		c.store.DeleteMenuItem(id)
		c.store.AddToast("Menu item deleted", models.ToastSuccess, 0)
	default:
		fmt.Fprintln(c.out, "Usage: menu list|add|update|delete")
	}
}

func (c *Console) cmdCategories(ctx context.Context, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}
	f := parseForm(args[1:])

	switch args[0] {
	case "list":
		for _, cat := range c.store.Categories() {
			fmt.Fprintln(c.out, cat)
		}
	case "add":
		name := f.get("name")
		if name == "" {
			c.store.AddToast("Category name is required", models.ToastError, 0)
			return
		}
		c.store.AddCategory(name)
		c.store.AddToast(fmt.Sprintf("Category %q added", name), models.ToastSuccess, 0)
	case "rename":
		if f.get("old") == "" || f.get("new") == "" {
			c.store.AddToast("Both old and new names are required", models.ToastError, 0)
			return
		}
		c.store.UpdateCategory(f.get("old"), f.get("new"))
		c.store.AddToast("Category renamed", models.ToastSuccess, 0)
	case "delete":
		name := f.get("name")
		if name == "" {
			c.store.AddToast("Category name is required", models.ToastError, 0)
			return
		}
		c.store.DeleteCategory(name)
		c.store.AddToast("Category deleted", models.ToastSuccess, 0)
	default:
		fmt.Fprintln(c.out, "Usage: categories list|add|rename|delete")
	}
}

func (c *Console) cmdUsers(ctx context.Context, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}
	f := parseForm(args[1:])

	switch args[0] {
	case "list":
		w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSTATUS\tJOINED")
		for _, u := range c.store.Users() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				u.ID, u.FullName, u.Email, u.Role, u.Status, u.JoinDate)
		}
		w.Flush()
	case "add":
		if f.get("name") == "" || f.get("email") == "" || f.get("password") == "" {
			c.store.AddToast("Please fill in all fields", models.ToastError, 0)
			return
		}
		hash, err := auth.HashPassword(f.get("password"))
		if err != nil {
			c.toastError(err)
			return
		}
		user, err := c.store.CreateUser(ctx, models.User{
			FullName:     f.get("name"),
			Email:        f.get("email"),
			Phone:        f.get("phone"),
			Address:      f.get("address"),
			Role:         f.get("role"),
			PasswordHash: hash,
		})
		if err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast(fmt.Sprintf("User %q created", user.FullName), models.ToastSuccess, 0)
	case "update":
		id, err := f.id("id")
		if err != nil {
			c.store.AddToast(err.Error(), models.ToastError, 0)
			return
		}
		if err := c.store.UpdateUserAsAdmin(ctx, id, userPatchFromForm(f)); err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast("User updated", models.ToastSuccess, 0)
	case "delete":
		id, err := f.id("id")
		if err != nil {
			c.store.AddToast(err.Error(), models.ToastError, 0)
			return
		}
		if err := c.store.DeleteUser(ctx, id); err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast("User deleted", models.ToastSuccess, 0)
	default:
		fmt.Fprintln(c.out, "Usage: users list|add|update|delete")
	}
}

func userPatchFromForm(f form) models.UserPatch {
	var patch models.UserPatch
	if f.has("name") {
		v := f.get("name")
		patch.FullName = &v
	}
	if f.has("email") {
		v := f.get("email")
		patch.Email = &v
	}
	if f.has("phone") {
		v := f.get("phone")
		patch.Phone = &v
	}
	if f.has("address") {
		v := f.get("address")
		patch.Address = &v
	}
	if f.has("role") {
		v := f.get("role")
		patch.Role = &v
	}
	if f.has("status") {
		v := f.get("status")
		patch.Status = &v
	}
	return patch
}

func (c *Console) cmdProfile(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.cmdWhoami()
		return
	}
	f := parseForm(args[1:])

	switch args[0] {
	case "update":
		if err := c.store.UpdateProfile(ctx, userPatchFromForm(f)); err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast("Profile updated", models.ToastSuccess, 0)
	case "photo":
		if f.get("url") == "" {
			c.store.AddToast("Photo url is required", models.ToastError, 0)
			return
		}
		if err := c.store.UploadUserPhoto(ctx, f.get("url")); err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast("Photo uploaded", models.ToastSuccess, 0)
	default:
		fmt.Fprintln(c.out, "Usage: profile update|photo")
	}
}

func (c *Console) cmdNotifications(ctx context.Context, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}
	f := parseForm(args[1:])

	switch args[0] {
	case "list":
		for _, n := range c.store.Notifications() {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Fprintf(c.out, "%s [%s] %s: %s (%s)\n", marker, n.Type, n.Title, n.Message, n.ID)
		}
	case "add":
		if f.get("title") == "" || f.get("message") == "" {
			c.store.AddToast("Title and message are required", models.ToastError, 0)
			return
		}
		kind := f.get("type")
		if kind == "" {
			kind = models.ToastInfo
		}
		if _, err := c.store.AddNotification(ctx, models.Notification{
			Title:   f.get("title"),
			Message: f.get("message"),
			Type:    kind,
		}); err != nil {
			c.toastError(err)
			return
		}
	case "read":
		if err := c.store.MarkNotificationAsRead(ctx, f.get("id")); err != nil {
			c.toastError(err)
		}
	case "read-all":
		if err := c.store.MarkAllNotificationsAsRead(ctx); err != nil {
			c.toastError(err)
		}
	case "clear":
		if err := c.store.ClearAllNotifications(ctx); err != nil {
			c.toastError(err)
		}
	case "delete":
		if err := c.store.DeleteNotification(ctx, f.get("id")); err != nil {
			c.toastError(err)
		}
	case "unread":
		fmt.Fprintf(c.out, "%d unread\n", c.store.UnreadNotificationCount())
	default:
		fmt.Fprintln(c.out, "Usage: notifications list|add|read|read-all|clear|delete|unread")
	}
}

func (c *Console) cmdOrders(ctx context.Context, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}
	f := parseForm(args[1:])

	switch args[0] {
	case "list":
		page := 1
		if f.has("page") {
			if p, err := f.id("page"); err == nil {
				page = p
			}
		}
		rows, info := reports.Paginate(c.store.Orders(), page, 10)
		w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER #\tCUSTOMER\tITEMS\tTOTAL\tDATE\tSTATUS")
		for _, o := range rows {
			fmt.Fprintf(w, "%s\t%s\t%d items\t$%.2f\t%s\t%s\n",
				o.OrderNumber, o.Customer, o.ItemCount, o.Total, o.Date, o.Status)
		}
		w.Flush()
		fmt.Fprintf(c.out, "Page %d of %d (%d orders)\n", info.Number, info.TotalPages, info.Total)
	case "view":
		id, err := f.id("id")
		if err != nil {
			c.store.AddToast(err.Error(), models.ToastError, 0)
			return
		}
		o, ok := c.store.OrderByID(id)
		if !ok {
			fmt.Fprintln(c.out, "Order not found.")
			return
		}
		fmt.Fprintf(c.out, "%s: %s, %d items, $%.2f, %s, %s\n",
			o.OrderNumber, o.Customer, o.ItemCount, o.Total, o.Status, o.Date)
	case "status":
		id, err := f.id("id")
		if err != nil {
			c.store.AddToast(err.Error(), models.ToastError, 0)
			return
		}
		if f.get("status") == "" {
			c.store.AddToast("Status is required", models.ToastError, 0)
			return
		}
		if err := c.store.UpdateOrderStatus(ctx, id, f.get("status")); err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast("Order status updated", models.ToastSuccess, 0)
	default:
		fmt.Fprintln(c.out, "Usage: orders list|view|status")
	}
}

func (c *Console) cmdReports(args []string) {
	f := parseForm(args)

	summary := reports.Summarize(c.store.MenuItems(), c.store.Categories(),
		c.store.Users(), c.store.UnreadNotificationCount(), c.store.Orders())
	metrics := reports.OrderMetrics(c.store.Orders())

	fmt.Fprintf(c.out, "Menu items: %d  Categories: %d  Users: %d  Unread: %d\n",
		summary.MenuItems, summary.Categories, summary.Users, summary.Unread)
	fmt.Fprintf(c.out, "Orders: %d  Revenue: $%.2f  Avg order: $%.2f  Completion: %.0f%%\n",
		metrics.TotalOrders, metrics.TotalRevenue, metrics.AvgOrderValue, metrics.CompletionRate*100)
	for status, count := range metrics.ByStatus {
		fmt.Fprintf(c.out, "  %s: %d\n", status, count)
	}

	if path := f.get("export"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			c.toastError(fmt.Errorf("failed to create export file: %w", err))
			return
		}
		defer file.Close()
		if err := reports.WriteOrdersCSV(file, c.store.Orders()); err != nil {
			c.toastError(err)
			return
		}
		c.store.AddToast("Report exported to "+path, models.ToastSuccess, 0)
	}
}

func (c *Console) cmdSettings(ctx context.Context, args []string) {
	if len(args) == 0 {
		args = []string{"show"}
	}
	f := parseForm(args[1:])

	switch args[0] {
	case "show":
		s := c.store.Settings()
		fmt.Fprintf(c.out, "Restaurant: %s\nEmail: %s\nPhone: %s\nAddress: %s\nCurrency: %s  Timezone: %s\n",
			s.RestaurantName, s.Email, s.Phone, s.Address, s.Currency, s.Timezone)
		fmt.Fprintf(c.out, "Notifications: email=%t sms=%t push=%t\nTwo-factor: %t\n",
			s.Notifications.EmailNotifications, s.Notifications.SMSNotifications,
			s.Notifications.PushNotifications, s.TwoFactor.Enabled)
	case "save":
		s := c.store.Settings()
		if f.has("restaurant") {
			s.RestaurantName = f.get("restaurant")
		}
		if f.has("email") {
			s.Email = f.get("email")
		}
		if f.has("phone") {
			s.Phone = f.get("phone")
		}
		if f.has("address") {
			s.Address = f.get("address")
		}
		if f.has("currency") {
			s.Currency = f.get("currency")
		}
		if f.has("timezone") {
			s.Timezone = f.get("timezone")
		}
		if f.has("email-notifications") {
			s.Notifications.EmailNotifications = f.boolFlag("email-notifications")
		}
		if f.has("sms-notifications") {
			s.Notifications.SMSNotifications = f.boolFlag("sms-notifications")
		}
		if f.has("push-notifications") {
			s.Notifications.PushNotifications = f.boolFlag("push-notifications")
		}
		if err := c.store.SaveSettings(ctx, s); err != nil {
			c.store.AddToast("Failed to save settings", models.ToastError, 0)
			return
		}
		c.store.AddToast("Settings saved successfully!", models.ToastSuccess, 0)
	case "2fa":
		tf, err := auth.EnrollTwoFactor()
		if err != nil {
			c.toastError(err)
			return
		}
		s := c.store.Settings()
		s.TwoFactor = tf
		if err := c.store.SaveSettings(ctx, s); err != nil {
			c.store.AddToast("Failed to save settings", models.ToastError, 0)
			return
		}
		fmt.Fprintf(c.out, "Secret: %s\nBackup codes: %v\n", tf.Secret, tf.BackupCodes)
		c.store.AddToast("Two-factor authentication enabled", models.ToastSuccess, 0)
	default:
		fmt.Fprintln(c.out, "Usage: settings show|save|2fa")
	}
}
