// Package shell is the interactive text menu over the ledger. It reads raw
// input, validates it and renders every core error as a message.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"ledger/internal/core"
)

type Logger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

type Shell struct {
	ledger   Ledger
	exporter Exporter
	logger   Logger
	validate *validator.Validate
	scanner  *bufio.Scanner
	out      io.Writer
}

func New(ledger Ledger, exporter Exporter, logger Logger, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		ledger:   ledger,
		exporter: exporter,
		logger:   logger,
		validate: newValidator(),
		scanner:  bufio.NewScanner(in),
		out:      out,
	}
}

// Run serves the menu until the user exits, the input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		s.printMenu()

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return ignoreEOF(err)
		}

		choice = strings.TrimSpace(choice)
		s.logger.DebugContext(ctx, "command", "choice", choice)

		switch choice {
		case "1":
			err = s.createAccount(ctx)
		case "2":
			err = s.deposit(ctx)
		case "3":
			err = s.withdraw(ctx)
		case "4":
			err = s.transfer(ctx)
		case "5":
			err = s.viewBalance()
		case "6":
			s.println("Exiting the banking system.")
			return nil
		case "7":
			s.export(ctx)
		default:
			s.println("Invalid choice. Please try again.")
		}

		if err != nil {
			return ignoreEOF(err)
		}
	}

	return nil
}

func (s *Shell) printMenu() {
	s.println("")
	s.println("BANKING SYSTEM MENU")
	s.println("1. Create Account")
	s.println("2. Deposit Money")
	s.println("3. Withdraw Money")
	s.println("4. Transfer Money")
	s.println("5. View Account Balance")
	s.println("6. Exit")
	s.println("7. Export Accounts")
}

func (s *Shell) createAccount(ctx context.Context) error {
	var req CreateAccountRequest

	for {
		name, err := s.prompt("Enter your name (letters and spaces only): ")
		if err != nil {
			return err
		}

		req.Name = strings.TrimSpace(name)
		if s.validate.Var(req.Name, "required,accountname") == nil {
			break
		}
		s.println("Invalid name. Please enter a name with letters and spaces only.")
	}

	for {
		balance, err := s.prompt("Enter initial balance: ")
		if err != nil {
			return err
		}

		req.InitialBalance = balance
		if s.validate.Struct(req) == nil {
			break
		}
		s.println("Invalid amount. Please enter a valid positive number.")
	}

	name, balance, err := req.ToDomain()
	if err != nil {
		s.printError(ctx, err)
		return nil
	}

	id, err := s.ledger.CreateAccount(ctx, name, balance)
	if err != nil {
		s.printError(ctx, err)
		return nil
	}

	s.printf("Account created! Your Account ID: %s\n", id)
	return nil
}

func (s *Shell) deposit(ctx context.Context) error {
	req, err := s.readAmountRequest("Enter deposit amount: ")
	if err != nil {
		return err
	}

	if !s.validAmount(req) {
		s.println("Invalid deposit amount. Please enter a valid positive number.")
		return nil
	}

	amount, err := req.ToDomain()
	if err != nil {
		s.printError(ctx, err)
		return nil
	}

	account, err := s.ledger.Deposit(ctx, req.AccountID, amount)
	if err != nil {
		s.printError(ctx, err)
		return nil
	}

	s.printf("Deposit successful! New balance: %s\n", account.Balance.StringFixed(2))
	return nil
}

func (s *Shell) withdraw(ctx context.Context) error {
	req, err := s.readAmountRequest("Enter withdrawal amount: ")
	if err != nil {
		return err
	}

	if !s.validAmount(req) {
		s.println("Invalid withdrawal amount. Please enter a valid positive number.")
		return nil
	}

	amount, err := req.ToDomain()
	if err != nil {
		s.printError(ctx, err)
		return nil
	}

	account, err := s.ledger.Withdraw(ctx, req.AccountID, amount)
	if err != nil {
		s.printError(ctx, err)
		return nil
	}

	s.printf("Withdrawal successful! New balance: %s\n", account.Balance.StringFixed(2))
	return nil
}

func (s *Shell) transfer(ctx context.Context) error {
	var req TransferRequest
	var err error

	if req.SenderID, err = s.prompt("Enter your Account ID: "); err != nil {
		return err
	}
	if req.RecipientID, err = s.prompt("Enter recipient's Account ID: "); err != nil {
		return err
	}
	if req.Amount, err = s.prompt("Enter transfer amount: "); err != nil {
		return err
	}
	req.SenderID = strings.TrimSpace(req.SenderID)
	req.RecipientID = strings.TrimSpace(req.RecipientID)

	if err = s.validate.Struct(req); err != nil && hasFieldError(err, "Amount") {
		s.println("Invalid transfer amount. Please enter a valid positive number.")
		return nil
	}

	_, senderFound := s.ledger.GetAccountByID(req.SenderID)
	_, recipientFound := s.ledger.GetAccountByID(req.RecipientID)
	if !senderFound || !recipientFound {
		s.println("One or both accounts not found.")
		return nil
	}

	amount, err := req.ToDomain()
	if err != nil {
		s.printError(ctx, err)
		return nil
	}

	sender, err := s.ledger.Transfer(ctx, req.SenderID, req.RecipientID, amount)
	if err != nil {
		s.printError(ctx, err)
		return nil
	}

	s.printf("Transfer successful! Your new balance: %s\n", sender.Balance.StringFixed(2))
	return nil
}

func (s *Shell) viewBalance() error {
	id, err := s.prompt("Enter your Account ID: ")
	if err != nil {
		return err
	}

	account, ok := s.ledger.GetAccountByID(strings.TrimSpace(id))
	if !ok {
		s.println("Account not found.")
		return nil
	}

	s.printf("Account Balance for %s: $%s\n", account.Name, account.Balance.StringFixed(2))
	return nil
}

func (s *Shell) export(ctx context.Context) {
	path, err := s.exporter.Export(ctx, s.ledger.Accounts())
	if err != nil {
		s.printError(ctx, err)
		return
	}

	s.printf("Accounts exported to %s\n", path)
}

func (s *Shell) readAmountRequest(amountPrompt string) (AmountRequest, error) {
	var req AmountRequest

	id, err := s.prompt("Enter your Account ID: ")
	if err != nil {
		return req, err
	}

	amount, err := s.prompt(amountPrompt)
	if err != nil {
		return req, err
	}

	req.AccountID = strings.TrimSpace(id)
	req.Amount = amount

	return req, nil
}

// validAmount ignores an empty account id; that case surfaces as "Account not found".
func (s *Shell) validAmount(req AmountRequest) bool {
	err := s.validate.Struct(req)
	return err == nil || !hasFieldError(err, "Amount")
}

func hasFieldError(err error, field string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return true
	}

	for _, fieldErr := range validationErrors {
		if fieldErr.Field() == field {
			return true
		}
	}

	return false
}

func (s *Shell) printError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, core.ErrAccountNotFound):
		s.println("Account not found.")
	case errors.Is(err, core.ErrInvalidRecipient):
		s.println("Error: Recipient account does not exist.")
	case errors.Is(err, core.ErrInsufficientFunds):
		s.println("Error: Insufficient funds.")
	case errors.Is(err, core.ErrInvalidName):
		s.println("Error: Invalid name. Only letters and spaces allowed.")
	case errors.Is(err, core.ErrNegativeInitialBalance):
		s.println("Error: Initial balance cannot be negative.")
	case errors.Is(err, core.ErrInvalidAmount):
		s.println("Error: Amount must be a valid positive number.")
	default:
		s.logger.ErrorContext(ctx, "Failed to process command", "error", err)
		s.println("Error: the operation could not be completed.")
	}
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return s.scanner.Text(), nil
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
