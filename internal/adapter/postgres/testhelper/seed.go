package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the USER role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedSpecialist creates a SPECIALIST user together with its profile.
func SeedSpecialist(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := SeedUserWithRole(t, pool, domain.UserRoleSpecialist)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO specialist_profiles (user_id, specialty, certificate_url, bio) VALUES ($1, $2, $3, $4)`,
		user.ID, "Sports nutrition", "https://certs.example.com/"+user.ID.String(), "Registered dietitian",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSpecialist insert profile: %v", err)
	}

	return user
}

// SeedUserWithRole creates a user carrying the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedGroup creates a PUBLIC group administered by adminID, with the admin
// as its only member.
func SeedGroup(t *testing.T, pool *pgxpool.Pool, adminID uuid.UUID) domain.Group {
	t.Helper()
	return SeedGroupWithType(t, pool, adminID, domain.GroupTypePublic)
}

// SeedGroupWithType creates a group of the given visibility.
func SeedGroupWithType(t *testing.T, pool *pgxpool.Pool, adminID uuid.UUID, typ domain.GroupType) domain.Group {
	t.Helper()
	ctx := context.Background()

	g := domain.Group{
		ID:          uuid.New(),
		Name:        "group-" + uniqueSuffix(),
		Description: "seeded group",
		Type:        typ,
		AdminID:     adminID,
		MemberCount: 1,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO groups (id, name, description, type, admin_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID, g.Name, g.Description, string(g.Type), g.AdminID, g.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup insert group: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO group_members (group_id, user_id, joined_at) VALUES ($1, $2, $3)`,
		g.ID, adminID, g.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup insert admin membership: %v", err)
	}

	return g
}

// SeedExercise creates a catalog exercise owned by userID.
func SeedExercise(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Exercise {
	t.Helper()

	e := domain.Exercise{
		ID:          uuid.New(),
		Name:        "Squat " + uniqueSuffix(),
		Description: "Back squat",
		Sets:        4,
		Reps:        8,
		RestSeconds: 90,
		CreatedBy:   userID,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO exercises (id, name, description, sets, reps, rest_seconds, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Name, e.Description, e.Sets, e.Reps, e.RestSeconds, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExercise insert: %v", err)
	}

	return e
}

// SeedProgressSample records a weight measurement for userID on the given day.
func SeedProgressSample(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, weightKg float64, day time.Time) domain.ProgressSample {
	t.Helper()

	s := domain.ProgressSample{
		ID:         uuid.New(),
		UserID:     userID,
		WeightKg:   weightKg,
		RecordedOn: domain.DateOnly(day),
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO progress_samples (id, user_id, weight_kg, recorded_on, created_at) VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UserID, s.WeightKg, s.RecordedOn, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgressSample insert: %v", err)
	}

	return s
}

// SeedNutritionPlan creates a nutrition plan publication authored by authorID.
func SeedNutritionPlan(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Publication {
	t.Helper()
	ctx := context.Background()

	details := domain.NutritionPlanDetails{
		DietType:      "Mediterranean",
		CalorieTarget: 2200,
		Goals:         "maintain weight",
		Restrictions:  "no shellfish",
	}
	p := domain.Publication{
		ID:        uuid.New(),
		Kind:      domain.PublicationKindNutritionPlan,
		Title:     "Plan " + uniqueSuffix(),
		Body:      "Weekly meal plan",
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		Details:   details,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO publications (id, kind, title, body, author_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, string(p.Kind), p.Title, p.Body, p.AuthorID, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNutritionPlan insert publication: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO nutrition_plans (publication_id, diet_type, calorie_target, goals, restrictions) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, details.DietType, details.CalorieTarget, details.Goals, details.Restrictions,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNutritionPlan insert payload: %v", err)
	}

	return p
}

// SeedRoutine creates a routine publication with the given goal and exercise set.
func SeedRoutine(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, goal string, exerciseIDs ...uuid.UUID) domain.Publication {
	t.Helper()
	ctx := context.Background()

	details := domain.RoutineDetails{
		Name:            "Routine " + uniqueSuffix(),
		DurationMinutes: 45,
		Frequency:       "3x/week",
		Difficulty:      "intermediate",
		Goal:            goal,
		ExerciseIDs:     exerciseIDs,
	}
	p := domain.Publication{
		ID:        uuid.New(),
		Kind:      domain.PublicationKindRoutine,
		Title:     details.Name,
		Body:      "Full body session",
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		Details:   details,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO publications (id, kind, title, body, author_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, string(p.Kind), p.Title, p.Body, p.AuthorID, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoutine insert publication: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO routines (publication_id, name, duration_minutes, frequency, difficulty, goal) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, details.Name, details.DurationMinutes, details.Frequency, details.Difficulty, details.Goal,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoutine insert payload: %v", err)
	}

	for _, exID := range exerciseIDs {
		_, err = pool.Exec(ctx,
			`INSERT INTO routine_exercises (routine_id, exercise_id) VALUES ($1, $2)`, p.ID, exID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRoutine link exercise: %v", err)
		}
	}

	return p
}
