package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"rental-hub/internal/client"
	"rental-hub/internal/config"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	gateway := client.NewHTTPGateway(cfg.APIBaseURL, logger)
	controller := client.NewController(logger, gateway)

	// Carga inicial: estado none, solo el feed.
	controller.Start(ctx)
	printView(controller)

	for {
		sess := controller.Session()
		fmt.Println("\n===== Rental Hub =====")
		if sess.Authenticated() {
			fmt.Printf("Sesion: usuario %d (%s)\n", sess.UserID, sess.UserType)
		} else {
			fmt.Println("Sesion: anonimo")
		}
		fmt.Println("[1] Iniciar sesion")
		fmt.Println("[2] Registrarse")
		fmt.Println("[3] Refrescar vista")
		if sess.UserType == client.UserTypeTenant {
			fmt.Println("[4] Dar like a una propiedad")
		}
		fmt.Println("[5] Salir")
		fmt.Print("Selecciona una opcion: ")

		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		switch line {
		case "1":
			loginFlow(ctx, reader, controller)
		case "2":
			signupFlow(ctx, reader, controller)
		case "3":
			controller.Refresh(ctx)
			printView(controller)
		case "4":
			likeFlow(ctx, reader, controller)
		case "5":
			os.Exit(0)
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

func loginFlow(ctx context.Context, reader *bufio.Reader, controller *client.Controller) {
	fmt.Print("Email: ")
	email, _ := reader.ReadString('\n')
	fmt.Print("Password: ")
	password, _ := reader.ReadString('\n')

	msg, err := controller.Login(ctx, strings.TrimSpace(email), strings.TrimSpace(password))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(msg)
	printView(controller)
}

func signupFlow(ctx context.Context, reader *bufio.Reader, controller *client.Controller) {
	fmt.Print("Email: ")
	email, _ := reader.ReadString('\n')
	fmt.Print("Password: ")
	password, _ := reader.ReadString('\n')
	fmt.Print("Tipo de usuario (tenant/owner): ")
	userType, _ := reader.ReadString('\n')

	msg, err := controller.Signup(ctx,
		strings.TrimSpace(email),
		strings.TrimSpace(password),
		client.UserType(strings.TrimSpace(userType)),
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(msg)
}

func likeFlow(ctx context.Context, reader *bufio.Reader, controller *client.Controller) {
	fmt.Print("ID de la propiedad: ")
	line, _ := reader.ReadString('\n')
	propertyID, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		fmt.Println("ID invalido.")
		return
	}

	msg, err := controller.RecordInterest(ctx, propertyID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(msg)
}

func printView(controller *client.Controller) {
	view := controller.View()

	if view.Dashboard.Kind != client.UserTypeNone {
		switch view.Dashboard.Kind {
		case client.UserTypeOwner:
			fmt.Println("\n--- Owner Dashboard ---")
			if view.Dashboard.Message != "" {
				fmt.Println(view.Dashboard.Message)
			}
			for _, card := range view.Dashboard.OwnerCards {
				fmt.Printf("* %s | Rental Yield: %s | Payback: %s years\n",
					card.Title, card.RentalYield, card.PaybackYears)
			}
		case client.UserTypeTenant:
			fmt.Println("\n--- My Liked Properties ---")
			if view.Dashboard.Message != "" {
				fmt.Println(view.Dashboard.Message)
			}
			for _, card := range view.Dashboard.TenantCards {
				fmt.Printf("* %s | Total Interested: %d\n", card.Title, card.TotalLikes)
				for _, t := range card.Interested {
					fmt.Printf("    - %s | %s | %s\n", t.Name, t.Phone, t.Email)
				}
			}
		}
	}

	if view.Feed.Loaded {
		fmt.Println("\n--- Propiedades ---")
		if view.Feed.Placeholder != "" {
			fmt.Println(view.Feed.Placeholder)
			return
		}
		for _, card := range view.Feed.Cards {
			like := ""
			if card.CanLike {
				like = " [like disponible]"
			}
			fmt.Printf("[%d] %s - %s - %s%s\n", card.PropertyID, card.Title, card.City, card.Price, like)
		}
	}
}
