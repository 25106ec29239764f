// Package main seeds a local database with demo data for manual testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zerotabs/backend/internal/auth"
	"github.com/zerotabs/backend/internal/models"
	"github.com/zerotabs/backend/internal/storage"
	"github.com/zerotabs/backend/internal/storage/sqlite"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	dbPath := fs.String("db", "./data/zerotabs.db", "Path to database file")
	password := fs.String("password", "password123", "Password for seeded users")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	userKeys, err := seedUsers(ctx, store, *password, now)
	if err != nil {
		return err
	}

	vendor := &models.Vendor{
		VendorID:    "vendor_001",
		Name:        "Pizza Palace",
		Type:        "Restaurant",
		KYCVerified: true,
		ContactInfo: map[string]string{
			"phone": "1234567890",
			"email": "contact@pizzapalace.com",
		},
		CreatedAt: now,
	}
	if err := store.UpsertVendor(ctx, vendor); err != nil {
		return fmt.Errorf("failed to seed vendor: %w", err)
	}
	fmt.Println("Inserted vendor", vendor.VendorID)

	session := &models.Session{
		SessionID:    "session::session_001",
		SessionName:  "Friday dinner",
		VendorID:     vendor.VendorID,
		CreatedBy:    userKeys[0],
		Status:       models.SessionOpen,
		Participants: userKeys,
		CreatedAt:    now,
	}
	if err := store.UpsertSession(ctx, session); err != nil {
		return fmt.Errorf("failed to seed session: %w", err)
	}
	fmt.Println("Inserted session", session.SessionID)

	bill := &models.Bill{
		BillID:      "bill_001",
		SessionID:   session.SessionID,
		VendorID:    vendor.VendorID,
		TotalAmount: 45.50,
		Currency:    "USD",
		Items: []models.Item{
			{Name: "Pizza", Price: 20.00, Quantity: 1},
			{Name: "Pasta", Price: 15.50, Quantity: 1},
			{Name: "Drinks", Price: 10.00, Quantity: 2},
		},
		CreatedAt: now,
	}
	if err := store.UpsertBill(ctx, bill); err != nil {
		return fmt.Errorf("failed to seed bill: %w", err)
	}
	fmt.Println("Inserted bill", bill.BillID)

	split := &models.Split{
		SplitID:        "split_001",
		BillID:         bill.BillID,
		UserID:         userKeys[1],
		Amount:         15.17,
		Items:          []string{"Pizza"},
		ApprovalStatus: models.SplitPending,
		CreatedAt:      now,
	}
	if err := store.UpsertSplit(ctx, split); err != nil {
		return fmt.Errorf("failed to seed split: %w", err)
	}
	fmt.Println("Inserted split", split.SplitID)

	payment := &models.Payment{
		PaymentID:   "payment::payment_001",
		SessionID:   session.SessionID,
		VendorID:    vendor.VendorID,
		TotalAmount: 45.50,
		Currency:    "USD",
		Participants: []models.PaymentParticipant{
			{UserID: userKeys[0], Amount: 15.17},
			{UserID: userKeys[1], Amount: 15.17},
			{UserID: userKeys[2], Amount: 15.16},
		},
		PaymentStatus: models.PaymentProcessing,
		CreatedAt:     now,
	}
	if err := store.UpsertPayment(ctx, payment); err != nil {
		return fmt.Errorf("failed to seed payment: %w", err)
	}
	fmt.Println("Inserted payment", payment.PaymentID)

	fmt.Println("Done seeding", *dbPath)
	return nil
}

// seedUsers creates three verified demo accounts and returns their keys.
func seedUsers(ctx context.Context, store storage.Store, password string, now time.Time) ([]string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	names := []struct {
		full  string
		email string
	}{
		{"Alice Example", "alice@example.com"},
		{"Bob Example", "bob@example.com"},
		{"Charlie Example", "charlie@example.com"},
	}

	keys := make([]string, 0, len(names))
	for _, n := range names {
		user := &models.User{
			UserID:    models.UserKey(n.email),
			FullName:  n.full,
			Email:     n.email,
			Password:  hash,
			Verified:  true,
			CreatedAt: now,
		}
		if err := store.UpsertUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", n.email, err)
		}
		fmt.Println("Inserted user", user.UserID)
		keys = append(keys, user.UserID)
	}
	return keys, nil
}
