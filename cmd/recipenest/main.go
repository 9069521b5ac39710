// Command recipenest is the RecipeNest command line client: browse and
// search the recipe catalog, manage favorites and submit recipes with a
// photo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/recipenest/client-go/config"
	"github.com/recipenest/client-go/internal/apierror"
	"github.com/recipenest/client-go/internal/client"
	"github.com/recipenest/client-go/internal/session"
	"github.com/recipenest/client-go/internal/types"
)

const usage = `usage: recipenest <command> [flags]

commands:
  register    create an account and sign in
  login       sign in to an existing account
  logout      sign out
  whoami      show the signed-in user
  list        list recipes, optionally by category
  search      search recipes by name or ingredient
  get         show one recipe by id
  mine        list recipes you created
  create      submit a new recipe with a photo
  favorites   list your favorite recipes
  favorite    add a recipe to your favorites
  unfavorite  remove a recipe from your favorites
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fatal(err)
	}

	sessionPath := cfg.SessionPath
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			fatal(err)
		}
	}
	store := session.NewFileStore(sessionPath)

	logger := zap.NewNop()
	if os.Getenv("RECIPENEST_DEBUG") != "" {
		logger, err = zap.NewDevelopment()
		if err != nil {
			fatal(err)
		}
		defer logger.Sync()
	}

	api, err := client.New(cfg.BaseURL, store,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger))
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]

	if err := run(ctx, api, store, cmd, args); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, api *client.Client, store session.Store, cmd string, args []string) error {
	switch cmd {
	case "register":
		return runRegister(ctx, api, args)
	case "login":
		return runLogin(ctx, api, args)
	case "logout":
		if err := api.Auth.Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	case "whoami":
		return runWhoami(store)
	case "list":
		return runList(ctx, api, args)
	case "search":
		return runSearch(ctx, api, args)
	case "get":
		return runGet(ctx, api, args)
	case "mine":
		return runMine(ctx, api, store)
	case "create":
		return runCreate(ctx, api, args)
	case "favorites":
		return runFavorites(ctx, api)
	case "favorite":
		return runToggleFavorite(ctx, api, args, true)
	case "unfavorite":
		return runToggleFavorite(ctx, api, args, false)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runRegister(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 6 characters)")
	fs.Parse(args)

	user, err := api.Auth.Register(ctx, *name, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome, %s! You are signed in as %s.\n", user.Name, user.Email)
	return nil
}

func runLogin(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	user, err := api.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s <%s>.\n", user.Name, user.Email)
	return nil
}

func runWhoami(store session.Store) error {
	sess, err := store.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			fmt.Println("Not signed in.")
			return nil
		}
		return err
	}
	fmt.Printf("%s <%s> (id %s)\n", sess.User.Name, sess.User.Email, sess.User.ID)
	return nil
}

func runList(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	category := fs.String("category", "", "filter by category (veg, non-veg, dessert, fast-food)")
	fs.Parse(args)

	recipes, err := api.Recipes.List(ctx, types.Category(*category))
	if err != nil {
		return err
	}
	printRecipes(recipes)
	return nil
}

func runSearch(ctx context.Context, api *client.Client, args []string) error {
	recipes, err := api.Recipes.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	printRecipes(recipes)
	return nil
}

func runGet(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: recipenest get <recipe-id>")
	}

	recipe, err := api.Recipes.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  [%s, %s, %s]\n", recipe.Name, recipe.Category, recipe.Difficulty, recipe.CookingTime)
	fmt.Println("\nIngredients:")
	for _, ing := range recipe.Ingredients {
		fmt.Printf("  - %s\n", ing)
	}
	fmt.Println("\nSteps:")
	for i, step := range recipe.Steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
	return nil
}

func runMine(ctx context.Context, api *client.Client, store session.Store) error {
	sess, err := store.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return apierror.ErrAuthRequired
		}
		return err
	}

	recipes, err := api.Recipes.ListMine(ctx, sess.User.ID)
	if err != nil {
		return err
	}
	printRecipes(recipes)
	return nil
}

func runCreate(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "recipe name")
	category := fs.String("category", "", "category (veg, non-veg, dessert, fast-food)")
	difficulty := fs.String("difficulty", "easy", "difficulty (easy, medium, hard)")
	cookingTime := fs.String("time", "", "cooking time, e.g. \"30 minutes\"")
	ingredients := fs.String("ingredients", "", "comma-separated ingredients")
	steps := fs.String("steps", "", "comma-separated steps")
	imagePath := fs.String("image", "", "path to the recipe photo")
	fs.Parse(args)

	req := types.CreateRecipeRequest{
		Name:        *name,
		Category:    types.Category(*category),
		Difficulty:  types.Difficulty(*difficulty),
		CookingTime: *cookingTime,
		Ingredients: splitList(*ingredients),
		Steps:       splitList(*steps),
	}

	if *imagePath != "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		req.Image = client.ImageDataURI(http.DetectContentType(data), data)
	}

	recipe, err := api.Recipes.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Created %q with id %s.\n", recipe.Name, recipe.ID)
	return nil
}

func runFavorites(ctx context.Context, api *client.Client) error {
	recipes, err := api.Favorites.List(ctx)
	if err != nil {
		return err
	}
	printRecipes(recipes)
	return nil
}

func runToggleFavorite(ctx context.Context, api *client.Client, args []string, add bool) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: recipenest favorite|unfavorite <recipe-id>")
	}

	if add {
		if err := api.Favorites.Add(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Added to favorites.")
		return nil
	}

	if err := api.Favorites.Remove(ctx, args[0]); err != nil {
		if errors.Is(err, apierror.ErrNotFound) {
			fmt.Println("Not in favorites.")
			return nil
		}
		return err
	}
	fmt.Println("Removed from favorites.")
	return nil
}

func printRecipes(recipes []types.Recipe) {
	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return
	}
	for _, r := range recipes {
		fmt.Printf("%s  %-30s  %-10s %-7s %s\n", r.ID, r.Name, r.Category, r.Difficulty, r.CookingTime)
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// fatal prints a user-facing message for any error kind and exits. Every
// failure path lands here; the process never panics on a failed call.
func fatal(err error) {
	switch {
	case errors.Is(err, apierror.ErrAuthRequired):
		fmt.Fprintln(os.Stderr, "recipenest: you need to sign in first (recipenest login)")
	case errors.Is(err, apierror.ErrNotFound):
		fmt.Fprintln(os.Stderr, "recipenest: not found")
	default:
		var remote *apierror.RemoteError
		var network *apierror.NetworkError
		var invalid *apierror.ValidationError
		switch {
		case errors.As(err, &invalid):
			fmt.Fprintf(os.Stderr, "recipenest: %v\n", invalid)
		case errors.As(err, &remote):
			fmt.Fprintf(os.Stderr, "recipenest: server error: %s\n", remote.Message)
		case errors.As(err, &network):
			fmt.Fprintln(os.Stderr, "recipenest: could not reach the server, try again")
		default:
			fmt.Fprintf(os.Stderr, "recipenest: %v\n", err)
		}
	}
	os.Exit(1)
}
