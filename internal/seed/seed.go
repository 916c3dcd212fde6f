// Package seed loads users and animals from a YAML file. Applying the same
// file twice creates nothing new.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/domain/animal"
	"github.com/linskybing/adoption-tracker/internal/domain/audit"
	"github.com/linskybing/adoption-tracker/internal/domain/user"
	"gopkg.in/yaml.v2"
)

type File struct {
	Users   []User   `yaml:"users"`
	Animals []Animal `yaml:"animals"`
}

type User struct {
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type Animal struct {
	Name                 string `yaml:"name"`
	Responsible          string `yaml:"responsible"`
	OwnerName            string `yaml:"owner_name"`
	OwnerContactNumber   string `yaml:"owner_contact_number"`
	OwnerContactEmail    string `yaml:"owner_contact_email"`
	FormGenerationPeriod int    `yaml:"form_generation_period"`
}

type Summary struct {
	UsersCreated   int
	AnimalsCreated int
	Skipped        int
}

func Load(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (File, error) {
	var f File
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}

// Apply creates missing users, then missing animals. An animal counts as
// present when one with the same name and owner name already exists.
func Apply(ctx context.Context, svc *application.Services, f File, logger *slog.Logger) (Summary, error) {
	var sum Summary
	actor := audit.Actor{IPAddress: "seed", UserAgent: "seed"}

	for _, u := range f.Users {
		input := user.CreateUserInput{Name: u.Name, Password: u.Password}
		if u.Role != "" {
			role := user.Role(u.Role)
			if !role.Valid() {
				return sum, fmt.Errorf("user %s: unknown role %q", u.Name, u.Role)
			}
			input.Role = &role
		}
		_, err := svc.User.RegisterUser(ctx, actor, input)
		switch {
		case errors.Is(err, application.ErrUsernameTaken):
			sum.Skipped++
		case err != nil:
			return sum, fmt.Errorf("user %s: %w", u.Name, err)
		default:
			sum.UsersCreated++
			logger.Info("seeded user", "name", u.Name)
		}
	}

	users, err := svc.User.ListUsers(ctx)
	if err != nil {
		return sum, err
	}
	userIDs := make(map[string]uint, len(users))
	for _, u := range users {
		userIDs[u.Name] = u.ID
	}

	existing, err := svc.Animal.ListAnimals(ctx, animal.ListParams{Limit: application.MaxAnimalLimit})
	if err != nil {
		return sum, err
	}
	present := make(map[[2]string]bool, len(existing))
	for _, a := range existing {
		present[[2]string{a.Name, a.OwnerName}] = true
	}

	for _, a := range f.Animals {
		if present[[2]string{a.Name, a.OwnerName}] {
			sum.Skipped++
			continue
		}
		ownerID, ok := userIDs[a.Responsible]
		if !ok {
			return sum, fmt.Errorf("animal %s: unknown responsible user %q", a.Name, a.Responsible)
		}
		_, err := svc.Animal.CreateAnimal(ctx, actor, animal.CreateAnimalInput{
			Name:                 a.Name,
			ResponsibleUserID:    ownerID,
			OwnerName:            a.OwnerName,
			OwnerContactNumber:   a.OwnerContactNumber,
			OwnerContactEmail:    a.OwnerContactEmail,
			FormGenerationPeriod: a.FormGenerationPeriod,
		})
		if err != nil {
			return sum, fmt.Errorf("animal %s: %w", a.Name, err)
		}
		present[[2]string{a.Name, a.OwnerName}] = true
		sum.AnimalsCreated++
		logger.Info("seeded animal", "name", a.Name)
	}
	return sum, nil
}
