package samples

import "github.com/gashok13193/DevOps-Docs/deck"

// DevOps builds the flagship deck: a themed DevOps practices
// presentation with section dividers, comparisons and an adoption
// chart.
func DevOps() (*deck.Presentation, error) {
	p := deck.New()
	if err := p.SetTheme(deck.RGB{R: 31, G: 73, B: 125}, deck.RGB{R: 79, G: 129, B: 189}); err != nil {
		return nil, err
	}

	p.AddTitleSlide(
		"DevOps Best Practices 2025",
		"Automation, CI/CD, and Infrastructure as Code",
		"DevOps Team",
	)

	if _, err := p.AddSectionSlide("Introduction", &deck.RGB{R: 31, G: 73, B: 125}); err != nil {
		return nil, err
	}

	p.AddContentSlide(
		"What is DevOps?",
		[]string{
			"Cultural and professional movement focused on collaboration",
			"Emphasizes communication between development and operations",
			"Automates processes and infrastructure",
			"Improves deployment frequency and reliability",
			"Reduces time to market for new features",
		},
		deck.LayoutBullet,
	)

	p.AddTwoColumnSlide(
		"DevOps: Benefits vs Challenges",
		[]string{
			"Benefits:",
			"• Faster deployment cycles",
			"• Improved collaboration",
			"• Higher quality software",
			"• Better customer satisfaction",
			"• Reduced costs",
		},
		[]string{
			"Challenges:",
			"• Cultural resistance",
			"• Tool complexity",
			"• Security concerns",
			"• Skill gaps",
			"• Legacy system integration",
		},
	)

	if _, err := p.AddSectionSlide("CI/CD Pipeline", &deck.RGB{R: 79, G: 129, B: 189}); err != nil {
		return nil, err
	}

	p.AddContentSlide(
		"CI/CD Pipeline Stages",
		[]string{
			"Source code management (Git, GitLab, GitHub)",
			"Build automation (Maven, Gradle, npm)",
			"Automated testing (unit, integration, E2E)",
			"Code quality analysis (SonarQube, ESLint)",
			"Artifact repository (Nexus, Artifactory)",
			"Deployment automation (Jenkins, GitLab CI, GitHub Actions)",
			"Monitoring and feedback (Prometheus, Grafana)",
		},
		deck.LayoutNumbered,
	)

	adoption := deck.ChartDataset{
		Categories: []string{"Traditional", "Agile", "DevOps", "Elite DevOps"},
		Series: []deck.Series{
			{Name: "Deployments per Month", Values: []float64{1, 4, 30, 200}},
		},
	}
	if _, err := p.AddChartSlide("Deployment Frequency Comparison", adoption, deck.ChartColumn); err != nil {
		return nil, err
	}

	if _, err := p.AddSectionSlide("Infrastructure as Code", &deck.RGB{R: 125, G: 73, B: 31}); err != nil {
		return nil, err
	}

	p.AddContentSlide(
		"Infrastructure as Code Tools",
		[]string{
			"Terraform - multi-cloud infrastructure provisioning",
			"AWS CloudFormation - AWS native IaC",
			"Ansible - configuration management and automation",
			"Kubernetes - container orchestration",
			"Docker - containerization platform",
			"Helm - Kubernetes package manager",
		},
		deck.LayoutBullet,
	)

	if _, err := p.AddSectionSlide("Monitoring & Observability", &deck.RGB{R: 189, G: 129, B: 79}); err != nil {
		return nil, err
	}

	p.AddTwoColumnSlide(
		"Monitoring Stack",
		[]string{
			"Metrics & Monitoring:",
			"• Prometheus",
			"• Grafana",
			"• DataDog",
			"• CloudWatch",
		},
		[]string{
			"Logging & Tracing:",
			"• ELK Stack",
			"• Fluentd",
			"• Jaeger",
			"• Splunk",
		},
	)

	p.AddContentSlide(
		"DevOps Best Practices",
		[]string{
			"Start small and iterate - begin with pilot projects",
			"Automate everything - reduce manual processes",
			"Implement comprehensive monitoring",
			"Foster collaboration culture",
			"Practice infrastructure as code",
			"Maintain security throughout (DevSecOps)",
			"Continuously learn and improve",
		},
		deck.LayoutBullet,
	)

	p.AddContentSlide(
		"Key Takeaways",
		[]string{
			"DevOps is a cultural transformation, not just tooling",
			"Start with small, manageable improvements",
			"Invest in automation and monitoring",
			"Focus on collaboration and communication",
			"Security should be integrated, not an afterthought",
			"Continuous learning and adaptation are essential",
		},
		deck.LayoutBullet,
	)

	p.AddTitleSlide("Thank You!", "Questions & Discussion", "DevOps Team")
	return p, nil
}
