package commands

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/eqb/projects-api/internal/config"
	"github.com/eqb/projects-api/internal/constants"
	"github.com/eqb/projects-api/internal/database"
	"github.com/eqb/projects-api/internal/repository"
	"github.com/eqb/projects-api/internal/services"
)

var (
	managerUsername string
	managerEmail    string
	managerPassword string
)

// create-manager bootstraps the first manager account so that the
// manager-gated endpoints become reachable at all.
var createManagerCmd = &cobra.Command{
	Use:   "create-manager",
	Short: "Create a manager account and print its token",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if err := database.Connect(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		userService := services.NewUserService(repository.NewUserRepository(database.GetDB()))

		user, err := userService.CreateUser(services.CreateUserInput{
			Username:  managerUsername,
			Email:     managerEmail,
			Password:  managerPassword,
			IsManager: true,
		})
		if err != nil {
			if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
				log.Fatalf("User exists: %v", err)
			}
			log.Fatalf("Failed to create manager: %v", err)
		}

		token, err := userService.IssueToken(user, constants.TokenTTL)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}

		log.Printf("Manager %q created with token %s", user.Username, token)
	},
}

func init() {
	createManagerCmd.Flags().StringVar(&managerUsername, "username", "", "username of the manager")
	createManagerCmd.Flags().StringVar(&managerEmail, "email", "", "e-mail of the manager")
	createManagerCmd.Flags().StringVar(&managerPassword, "password", "", "password of the manager")
	for _, flag := range []string{"username", "email", "password"} {
		if err := createManagerCmd.MarkFlagRequired(flag); err != nil {
			log.Fatalf("Failed to mark --%s required: %v", flag, err)
		}
	}

	rootCmd.AddCommand(createManagerCmd)
}
