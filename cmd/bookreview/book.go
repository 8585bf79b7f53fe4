package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bookreview/internal/logger"
	"bookreview/internal/services"
	"bookreview/internal/validators"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Manage the book catalog",
}

var bookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books",
	Run:   runBookList,
}

var bookCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a book to the catalog",
	Run:   runBookCreate,
}

var bookDeleteCmd = &cobra.Command{
	Use:   "delete [book_id]",
	Short: "Delete a book and its reviews",
	Args:  cobra.ExactArgs(1),
	Run:   runBookDelete,
}

var (
	bookTitle       string
	bookAuthor      string
	bookDescription string
	bookGenres      string
)

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.AddCommand(bookListCmd)
	bookCmd.AddCommand(bookCreateCmd)
	bookCmd.AddCommand(bookDeleteCmd)

	bookCreateCmd.Flags().StringVarP(&bookTitle, "title", "t", "", "Book title (required)")
	bookCreateCmd.Flags().StringVarP(&bookAuthor, "author", "a", "", "Author (required)")
	bookCreateCmd.Flags().StringVarP(&bookDescription, "description", "d", "", "Description (required)")
	bookCreateCmd.Flags().StringVarP(&bookGenres, "genres", "g", "", "Comma-separated genres (required)")
	bookCreateCmd.MarkFlagRequired("title")
	bookCreateCmd.MarkFlagRequired("author")
	bookCreateCmd.MarkFlagRequired("description")
	bookCreateCmd.MarkFlagRequired("genres")
}

func runBookList(cmd *cobra.Command, args []string) {
	a := openApp()
	defer a.Close()

	books, err := a.books.List(context.Background())
	if err != nil {
		logger.Fatalf("Failed to list books: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tGENRES\tCREATED")
	for _, b := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Title, b.Author, strings.Join(b.GenreTags(), ", "), b.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func runBookCreate(cmd *cobra.Command, args []string) {
	a := openApp()
	defer a.Close()

	book, err := a.books.Create(context.Background(), services.BookInput{
		Title:       bookTitle,
		Author:      bookAuthor,
		Description: bookDescription,
		Genres:      bookGenres,
	})
	if err != nil {
		logger.Fatalf("Failed to create book: %v", err)
	}

	fmt.Printf("Book %q created successfully (ID: %s)\n", book.Title, book.ID)
}

func runBookDelete(cmd *cobra.Command, args []string) {
	id, err := validators.ParseID(args[0])
	if err != nil {
		logger.Fatalf("Invalid book ID: %s", args[0])
	}

	a := openApp()
	defer a.Close()

	book, err := a.books.Delete(context.Background(), id)
	if err != nil {
		logger.Fatalf("Failed to delete book: %v", err)
	}

	fmt.Printf("Book %q deleted\n", book.Title)
}
