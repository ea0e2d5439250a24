package database

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/anand7670/portfolio-backend/models"
)

// Seed runs the idempotent first-boot bootstrap: one admin credential, one
// portfolio singleton with defaults, and a starter project catalog when the
// catalog is empty. Each step is a find-or-create check; running Seed again
// is a no-op.
func (d Database) Seed(adminEmail, adminPassword string) error {
	if err := d.ensureAdmin(adminEmail, adminPassword); err != nil {
		return err
	}
	if err := d.ensureDefaultPortfolio(); err != nil {
		return err
	}
	return d.seedProjects()
}

func (d Database) ensureAdmin(email, password string) error {
	existing, err := d.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Debug().Str("email", email).Msg("Admin user already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := d.userRepo.Add(admin); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Admin user created successfully")
	return nil
}

func (d Database) ensureDefaultPortfolio() error {
	existing, err := d.portfolioRepo.Find()
	if err != nil {
		return err
	}
	if existing != nil {
		log.Debug().Msg("Portfolio data already exists, skipping")
		return nil
	}

	if err := d.portfolioRepo.Save(models.DefaultPortfolio()); err != nil {
		return err
	}

	log.Info().Msg("Default portfolio data created successfully")
	return nil
}

func (d Database) seedProjects() error {
	count, err := d.projectRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int64("count", count).Msg("Projects already exist, skipping seed")
		return nil
	}

	for _, project := range sampleProjects() {
		if err := d.projectRepo.Add(project); err != nil {
			return err
		}
	}

	log.Info().Msg("Sample projects seeded successfully")
	return nil
}

// sampleProjects is the fixed starter catalog inserted on an empty database
func sampleProjects() []*models.Project {
	return []*models.Project{
		{
			Title:           "E-Commerce Platform",
			Description:     "A full-stack e-commerce platform with user authentication, product management, and payment integration.",
			LongDescription: "Built a comprehensive e-commerce platform using React.js for the frontend and Node.js with Express.js for the backend. Features include user registration/login, product catalog, shopping cart, order management, and Stripe payment integration. The application uses MongoDB for data storage and includes an admin panel for managing products and orders.",
			Technologies:    []string{"React.js", "Node.js", "Express.js", "MongoDB", "Stripe API", "JWT", "CSS3"},
			LiveURL:         "https://example-ecommerce.com",
			GithubURL:       "https://github.com/anand7670/ecommerce-platform",
			Featured:        true,
			Status:          models.StatusCompleted,
			Order:           1,
		},
		{
			Title:           "Task Management App",
			Description:     "A collaborative task management application with real-time updates and team collaboration features.",
			LongDescription: "Developed a task management application that allows teams to create, assign, and track tasks in real-time. The app features drag-and-drop functionality, real-time notifications using Socket.io, user roles and permissions, and detailed analytics. Built with React.js frontend and Node.js backend with MongoDB database.",
			Technologies:    []string{"React.js", "Node.js", "Socket.io", "MongoDB", "Express.js", "Material-UI"},
			LiveURL:         "https://example-taskmanager.com",
			GithubURL:       "https://github.com/anand7670/task-manager",
			Featured:        true,
			Status:          models.StatusCompleted,
			Order:           2,
		},
		{
			Title:           "Weather Dashboard",
			Description:     "A responsive weather dashboard that displays current weather and forecasts for multiple cities.",
			LongDescription: "Created a weather dashboard that fetches real-time weather data from OpenWeatherMap API. Features include current weather display, 5-day forecast, city search functionality, favorite cities list, and responsive design. The application is built with vanilla JavaScript and uses local storage for user preferences.",
			Technologies:    []string{"JavaScript", "HTML5", "CSS3", "OpenWeatherMap API", "Chart.js"},
			LiveURL:         "https://example-weather.com",
			GithubURL:       "https://github.com/anand7670/weather-dashboard",
			Featured:        false,
			Status:          models.StatusCompleted,
			Order:           3,
		},
		{
			Title:           "Blog Platform",
			Description:     "A modern blog platform with content management system and user engagement features.",
			LongDescription: "Built a full-featured blog platform with user authentication, rich text editor, comment system, and social sharing. The platform includes an admin dashboard for content management, SEO optimization features, and responsive design. Uses React.js for frontend and Node.js with MongoDB for backend.",
			Technologies:    []string{"React.js", "Node.js", "MongoDB", "Express.js", "Quill.js", "Bootstrap"},
			LiveURL:         "https://example-blog.com",
			GithubURL:       "https://github.com/anand7670/blog-platform",
			Featured:        false,
			Status:          models.StatusCompleted,
			Order:           4,
		},
		{
			Title:           "Portfolio Website",
			Description:     "A professional portfolio website with admin panel for content management.",
			LongDescription: "Developed this portfolio website with a complete admin panel for managing personal information, projects, and contact messages. Features include responsive design, smooth animations, contact form with email integration, CV download functionality, and secure admin authentication. Built with React.js and Node.js.",
			Technologies:    []string{"React.js", "Node.js", "Express.js", "MongoDB", "JWT", "Framer Motion", "Nodemailer"},
			LiveURL:         "https://anandyadav.com",
			GithubURL:       "https://github.com/anand7670/portfolio",
			Featured:        true,
			Status:          models.StatusCompleted,
			Order:           0,
		},
	}
}
