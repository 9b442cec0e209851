package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"assomap/internal/config"
	"assomap/internal/db"
	"assomap/internal/model"
	"assomap/internal/repository"
)

type seedUser struct {
	ID       uint
	Nom      string
	Prenom   string
	Adresse  string
	DOB      string
	Email    string
	Password string
	Role     string
}

type seedProject struct {
	ID            uint
	Nom           string
	Longitude     float64
	Latitude      float64
	Description   string
	UtilisateurID uint
	DateDebut     string
	Budget        int64
	Categorie     string
	Localisation  string
}

type seedImage struct {
	ID        uint
	URL       string
	ProjetID  uint
	IsMain    bool
	IsPreview bool
}

var users = []seedUser{
	{1, "Admin", "Fondation CA", "Draguignan", "1990-01-01", "admin@assomap.fr", "admin2025", model.RoleAdmin},
	{2, "Assoc", "Chant des Dauphins", "Port-Fréjus", "2000-06-15", "dauphins@assomap.fr", "mer83", model.RoleUser},
	{3, "Assoc", "Recyclerie Gare", "Hyères", "2015-03-10", "recyclerie@assomap.fr", "velo83", model.RoleUser},
	{4, "Assoc", "AVATH", "Toulon", "1998-09-22", "avath@assomap.fr", "miam83", model.RoleUser},
	{5, "Musée", "Dinosaures", "Fox-Amphoux", "2025-06-07", "dinosaures@assomap.fr", "raptor83", model.RoleUser},
}

var projects = []seedProject{
	{1, "Voile Bonheur", 6.733, 43.433, "Sorties en mer pour public handicapé (autisme) à la rencontre des dauphins.", 2, "2025-05-01", 5000, "Social", "Port-Fréjus"},
	{2, "Atelier Vélo Solidaire", 5.435, 43.124, "Équipement pour réparation de vélos et formation de salariés en insertion.", 3, "2025-02-15", 2500, "Environnement", "Hyères"},
	{3, "Comptoir Bistrot Chalucet", 5.927, 43.124, "Restauration solidaire et inclusive pour lutter contre la précarité alimentaire.", 4, "2025-10-01", 3200, "Social", "Toulon"},
	{4, "Musée Dinosaures", 6.100, 43.580, "Ouverture du musée sur site paléontologique majeur.", 5, "2025-06-07", 7000, "Culture", "Fox-Amphoux"},
	{5, "Randonnée Éco-Trail", 6.146, 43.610, "Organisation de randonnées guidées pour sensibiliser à l'écologie.", 2, "2025-03-12", 1800, "Environnement", "Marseille"},
	{6, "Jardin Partagé Toulonnais", 5.930, 43.125, "Création d'un jardin partagé pour les habitants de Toulon.", 4, "2025-04-20", 1200, "Social", "Toulon"},
	{7, "Atelier Peinture Nice", 7.260, 43.710, "Cours de peinture inclusifs pour enfants et adultes.", 3, "2025-06-05", 2000, "Culture", "Nice"},
	{8, "Nettoyage Plage Cannes", 7.010, 43.552, "Mobilisation citoyenne pour nettoyer les plages de Cannes.", 2, "2025-07-10", 1500, "Environnement", "Cannes"},
	{9, "Bistrot Solidaire Marseille", 5.370, 43.300, "Repas gratuits et activités pour les personnes précaires.", 4, "2025-08-15", 3500, "Social", "Marseille"},
	{10, "Musée du Patrimoine Menton", 7.500, 43.780, "Expositions temporaires pour valoriser le patrimoine local.", 5, "2025-05-30", 6000, "Culture", "Menton"},
	{11, "Atelier Cirque Saint-Raphaël", 6.740, 43.430, "Cours de cirque pour enfants et adolescents.", 3, "2025-09-01", 2200, "Culture", "Saint-Raphaël"},
	{12, "Festival du Livre Hyères", 6.140, 43.120, "Organisation d'un festival du livre et d'ateliers d'écriture.", 3, "2025-10-12", 3000, "Culture", "Hyères"},
	{13, "Randonnée Seniors Provence", 6.050, 43.220, "Activités de plein air pour les seniors.", 2, "2025-03-20", 1000, "Social", "Draguignan"},
	{14, "Éco-Cyclo Nice", 7.280, 43.710, "Ateliers de réparation de vélos pour promouvoir la mobilité durable.", 3, "2025-04-18", 1800, "Environnement", "Nice"},
	{15, "Théâtre Inclusif Marseille", 5.370, 43.295, "Cours de théâtre pour personnes en situation de handicap.", 4, "2025-06-25", 2500, "Culture", "Marseille"},
	{16, "Atelier Cuisine Solidaire Toulon", 5.930, 43.125, "Cours de cuisine pour apprendre à cuisiner avec peu de ressources.", 4, "2025-05-10", 2000, "Social", "Toulon"},
	{17, "Observatoire des Oiseaux Camargue", 4.650, 43.550, "Activités d'observation et protection des oiseaux.", 2, "2025-07-05", 2200, "Environnement", "Camargue"},
	{18, "Festival Jazz Nice", 7.270, 43.705, "Organisation d'un festival de jazz et concerts gratuits.", 5, "2025-08-20", 4000, "Culture", "Nice"},
	{19, "Nettoyage Parc National Esterel", 6.780, 43.420, "Opération de nettoyage et sensibilisation écologique.", 2, "2025-09-10", 1300, "Environnement", "Fréjus"},
	{20, "Club Lecture Hyères", 6.140, 43.120, "Club de lecture pour adolescents et jeunes adultes.", 3, "2025-10-01", 900, "Culture", "Hyères"},
	{21, "Récup' Vélos Marseille", 5.370, 43.300, "Collecte et réparation de vélos pour les étudiants et familles.", 3, "2025-03-15", 2000, "Environnement", "Marseille"},
	{22, "Danse Inclusive Cannes", 7.010, 43.552, "Cours de danse pour tous publics, incluant personnes handicapées.", 4, "2025-05-12", 1800, "Culture", "Cannes"},
	{23, "Bibliothèque Mobile Provence", 6.050, 43.220, "Création d'une bibliothèque mobile pour les zones rurales.", 5, "2025-06-08", 2500, "Culture", "Draguignan"},
	{24, "Atelier Jardinage Menton", 7.500, 43.780, "Cours de jardinage pour enfants et familles.", 2, "2025-07-15", 1500, "Environnement", "Menton"},
}

var images = []seedImage{
	{1, "https://cdn/voile_handicap.jpg", 1, true, true},
	{2, "https://cdn/dauphins.jpg", 1, false, false},
	{3, "https://cdn/atelier_velo.jpg", 2, true, true},
	{4, "https://cdn/bistrot_devanture.jpg", 3, true, true},
	{5, "https://cdn/cuisine_inclusive.jpg", 3, false, true},
	{6, "https://cdn/raptor_museum.jpg", 4, true, true},
	{7, "https://cdn/inauguration.jpg", 4, false, false},
	{8, "https://cdn/randonnee_ecotrail.jpg", 5, true, true},
	{9, "https://cdn/jardin_partage.jpg", 6, true, true},
	{10, "https://cdn/atelier_peinture.jpg", 7, true, true},
	{11, "https://cdn/nettoyage_plage.jpg", 8, true, true},
	{12, "https://cdn/bistrot_solidaire.jpg", 9, true, true},
	{13, "https://cdn/musee_menton.jpg", 10, true, true},
	{14, "https://cdn/atelier_cirque.jpg", 11, true, true},
	{15, "https://cdn/festival_livre.jpg", 12, true, true},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Project{}, &model.Image{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)
	ctx := context.Background()

	createdUsers, err := seedUsers(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	createdProjects, err := seedProjects(ctx, projectRepo)
	if err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}

	createdImages, err := seedImages(ctx, imageRepo)
	if err != nil {
		log.Fatalf("Failed to seed images: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", createdUsers)
	log.Printf("  - Projects created: %d", createdProjects)
	log.Printf("  - Images created: %d", createdImages)
}

// seedUsers inserts the base user set, skipping rows that already exist.
// Passwords are stored hashed, never in clear.
func seedUsers(ctx context.Context, repo repository.UserRepository) (created int, err error) {
	for _, u := range users {
		existing, err := repo.FindByID(ctx, u.ID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, fmt.Errorf("error checking user %d: %w", u.ID, err)
		}
		if existing != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, fmt.Errorf("error hashing password for user %d: %w", u.ID, err)
		}

		user := &model.User{
			ID:         u.ID,
			Nom:        u.Nom,
			Prenom:     u.Prenom,
			Adresse:    u.Adresse,
			DOB:        u.DOB,
			Email:      u.Email,
			MotDePasse: string(hash),
			Role:       u.Role,
		}
		if err := repo.Create(ctx, user); err != nil {
			return created, fmt.Errorf("error creating user %d: %w", u.ID, err)
		}
		created++
	}
	return created, nil
}

func seedProjects(ctx context.Context, repo repository.ProjectRepository) (created int, err error) {
	for _, p := range projects {
		existing, err := repo.FindByID(ctx, p.ID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, fmt.Errorf("error checking project %d: %w", p.ID, err)
		}
		if existing != nil {
			continue
		}

		project := &model.Project{
			ID:            p.ID,
			Nom:           p.Nom,
			Longitude:     p.Longitude,
			Latitude:      p.Latitude,
			Description:   p.Description,
			UtilisateurID: p.UtilisateurID,
			DateDebut:     p.DateDebut,
			Budget:        decimal.NewFromInt(p.Budget),
			Categorie:     p.Categorie,
			Localisation:  p.Localisation,
		}
		if err := repo.Create(ctx, project); err != nil {
			return created, fmt.Errorf("error creating project %d: %w", p.ID, err)
		}
		created++
	}
	return created, nil
}

func seedImages(ctx context.Context, repo repository.ImageRepository) (created int, err error) {
	for _, img := range images {
		existing, err := repo.FindByID(ctx, img.ID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, fmt.Errorf("error checking image %d: %w", img.ID, err)
		}
		if existing != nil {
			continue
		}

		image := &model.Image{
			ID:        img.ID,
			URL:       img.URL,
			ProjetID:  img.ProjetID,
			IsMain:    img.IsMain,
			IsPreview: img.IsPreview,
		}
		if err := repo.Create(ctx, image); err != nil {
			return created, fmt.Errorf("error creating image %d: %w", img.ID, err)
		}
		created++
	}
	return created, nil
}
