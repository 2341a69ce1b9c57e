// seedusers overwrites the users collection file with randomly
// generated mock records.
//
// USAGE:
//
//	go run ./cmd/seedusers [count]          # default 10, writes users.json
//	go run ./cmd/seedusers --path=data.json 25
//
// Every generated record satisfies the record rules (name lengths,
// minimum age, gender-specific ceiling), so a seeded collection is
// indistinguishable from one built through the API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aanand-mishra/users-api/internal/storage/jsonfile"
	"github.com/aanand-mishra/users-api/internal/types"
)

const defaultCount = 10

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	path := flag.String("path", "users.json", "Path to the collection file to overwrite")
	flag.Parse()

	count := defaultCount
	if arg := flag.Arg(0); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			log.Error("count must be a non-negative integer", slog.String("got", arg))
			os.Exit(1)
		}
		count = n
	}

	log.Info("generating users", slog.Int("count", count), slog.String("path", *path))

	mock := make([]types.User, count)
	for i := range mock {
		mock[i] = generateUser()
	}

	store := jsonfile.New(*path, log)
	if err := store.SaveAll(context.Background(), mock); err != nil {
		log.Error("failed to write collection", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("generated users")
}

func generateUser() types.User {
	gender := types.GenderMale
	maxAge := types.MaxAgeMale
	if rand.IntN(2) == 0 {
		gender = types.GenderFemale
		maxAge = types.MaxAgeFemale
	}

	return types.User{
		ID:        uuid.NewString(),
		Gender:    gender,
		FirstName: randomName(),
		LastName:  randomName(),
		Age:       types.MinAge + rand.IntN(maxAge-types.MinAge+1),
	}
}

// randomName builds a pronounceable-ish throwaway name within the
// [5, 20] length bounds: an uppercase letter followed by lowercase ones.
func randomName() string {
	const letters = "abcdefghijklmnopqrstuvwxyz"

	n := types.MinNameLen + rand.IntN(8)
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		c := letters[rand.IntN(len(letters))]
		if i == 0 {
			c = c - 'a' + 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
