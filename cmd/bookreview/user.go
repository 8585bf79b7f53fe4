package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bookreview/internal/logger"
	"bookreview/internal/models"
	"bookreview/internal/services"
	"bookreview/internal/validators"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  "Create, list, and manage user accounts and roles.",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Run:   runUserList,
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	Run:   runUserCreate,
}

var userSetRoleCmd = &cobra.Command{
	Use:   "set-role [email]",
	Short: "Change a user's role",
	Args:  cobra.ExactArgs(1),
	Run:   runUserSetRole,
}

var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password [email]",
	Short: "Reset user password",
	Args:  cobra.ExactArgs(1),
	Run:   runUserResetPassword,
}

var (
	userEmail    string
	userName     string
	userPassword string
	userRole     string
)

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userSetRoleCmd)
	userCmd.AddCommand(userResetPasswordCmd)

	userCreateCmd.Flags().StringVarP(&userEmail, "email", "e", "", "User email (required)")
	userCreateCmd.Flags().StringVarP(&userName, "username", "u", "", "Display name (required)")
	userCreateCmd.Flags().StringVarP(&userPassword, "password", "p", "", "User password (required)")
	userCreateCmd.Flags().StringVarP(&userRole, "role", "r", "user", "User role (admin/user)")
	userCreateCmd.MarkFlagRequired("email")
	userCreateCmd.MarkFlagRequired("username")
	userCreateCmd.MarkFlagRequired("password")

	userSetRoleCmd.Flags().StringVarP(&userRole, "role", "r", "", "New role (admin/user)")
	userSetRoleCmd.MarkFlagRequired("role")

	userResetPasswordCmd.Flags().StringVarP(&userPassword, "password", "p", "", "New password (required)")
	userResetPasswordCmd.MarkFlagRequired("password")
}

func runUserList(cmd *cobra.Command, args []string) {
	a := openApp()
	defer a.Close()

	users, err := a.auth.List(context.Background())
	if err != nil {
		logger.Fatalf("Failed to list users: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tUSERNAME\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Email, u.Username, u.Role, u.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

type newUser struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=6,max=25,bcryptlen"`
	Role     string `json:"role" binding:"required,role"`
}

func runUserCreate(cmd *cobra.Command, args []string) {
	if fields := validators.Check(newUser{userEmail, userName, userPassword, userRole}); fields != nil {
		logger.Fatalf("Invalid user: %v", fields)
	}

	a := openApp()
	defer a.Close()

	user, err := a.auth.Register(context.Background(), services.RegisterInput{
		Email:    userEmail,
		Username: userName,
		Password: userPassword,
		Role:     models.Role(userRole),
	})
	if err != nil {
		logger.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User %s created successfully (ID: %s, role: %s)\n", user.Email, user.ID, user.Role)
}

func runUserSetRole(cmd *cobra.Command, args []string) {
	email := args[0]
	a := openApp()
	defer a.Close()

	ctx := context.Background()
	user, err := a.auth.GetByEmail(ctx, email)
	if err != nil {
		logger.Fatalf("User not found: %s", email)
	}

	if err := a.auth.UpdateRole(ctx, user.ID, models.Role(userRole)); err != nil {
		logger.Fatalf("Failed to update role: %v", err)
	}

	fmt.Printf("Role of %s set to %s\n", email, userRole)
}

func runUserResetPassword(cmd *cobra.Command, args []string) {
	email := args[0]
	a := openApp()
	defer a.Close()

	if err := a.auth.ResetPassword(context.Background(), email, userPassword); err != nil {
		logger.Fatalf("Failed to reset password: %v", err)
	}

	fmt.Printf("Password for %s reset successfully\n", email)
}
