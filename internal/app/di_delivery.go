package app

import (
	"fmt"

	deliveryHTTP "github.com/allisson/sealedfields/internal/delivery/http"
	deliveryRepository "github.com/allisson/sealedfields/internal/delivery/repository"
	deliveryService "github.com/allisson/sealedfields/internal/delivery/service"
	deliveryUseCase "github.com/allisson/sealedfields/internal/delivery/usecase"
)

// QueueRepository returns the delivery queue repository based on database driver.
func (c *Container) QueueRepository() (deliveryUseCase.QueueRepository, error) {
	var err error
	c.queueRepositoryInit.Do(func() {
		c.queueRepository, err = c.initQueueRepository()
		if err != nil {
			c.initErrors["queueRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["queueRepository"]; exists {
		return nil, storedErr
	}
	return c.queueRepository, nil
}

// TemplateRepository returns the message template repository based on database driver.
func (c *Container) TemplateRepository() (deliveryUseCase.TemplateRepository, error) {
	var err error
	c.templateRepositoryInit.Do(func() {
		c.templateRepository, err = c.initTemplateRepository()
		if err != nil {
			c.initErrors["templateRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["templateRepository"]; exists {
		return nil, storedErr
	}
	return c.templateRepository, nil
}

// Mailer returns the HTTP mail relay client.
func (c *Container) Mailer() deliveryService.Mailer {
	c.mailerInit.Do(func() {
		c.mailer = deliveryService.NewHTTPMailer(deliveryService.HTTPMailerConfig{
			BaseURL: c.config.MailRelayURL,
			Token:   c.config.MailRelayToken,
			Timeout: c.config.MailRelayTimeout,
		})
	})
	return c.mailer
}

// ProcessorUseCase returns the delivery queue processor.
func (c *Container) ProcessorUseCase() (deliveryUseCase.ProcessorUseCase, error) {
	var err error
	c.processorUseCaseInit.Do(func() {
		c.processorUseCase, err = c.initProcessorUseCase()
		if err != nil {
			c.initErrors["processorUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["processorUseCase"]; exists {
		return nil, storedErr
	}
	return c.processorUseCase, nil
}

// InterceptUseCase returns the outbound email intercept.
func (c *Container) InterceptUseCase() (deliveryUseCase.InterceptUseCase, error) {
	var err error
	c.interceptUseCaseInit.Do(func() {
		c.interceptUseCase, err = c.initInterceptUseCase()
		if err != nil {
			c.initErrors["interceptUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["interceptUseCase"]; exists {
		return nil, storedErr
	}
	return c.interceptUseCase, nil
}

// InterceptHandler returns the outbound email HTTP handler.
func (c *Container) InterceptHandler() (*deliveryHTTP.InterceptHandler, error) {
	var err error
	c.interceptHandlerInit.Do(func() {
		c.interceptHandler, err = c.initInterceptHandler()
		if err != nil {
			c.initErrors["interceptHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["interceptHandler"]; exists {
		return nil, storedErr
	}
	return c.interceptHandler, nil
}

// Worker returns the delivery queue worker.
func (c *Container) Worker() (*deliveryUseCase.Worker, error) {
	var err error
	c.workerInit.Do(func() {
		c.worker, err = c.initWorker()
		if err != nil {
			c.initErrors["worker"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["worker"]; exists {
		return nil, storedErr
	}
	return c.worker, nil
}

// initQueueRepository creates the queue repository for the configured driver.
func (c *Container) initQueueRepository() (deliveryUseCase.QueueRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for queue repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return deliveryRepository.NewMySQLQueueRepository(db), nil
	case "postgres":
		return deliveryRepository.NewPostgreSQLQueueRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTemplateRepository creates the template repository for the configured driver.
func (c *Container) initTemplateRepository() (deliveryUseCase.TemplateRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for template repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return deliveryRepository.NewMySQLTemplateRepository(db), nil
	case "postgres":
		return deliveryRepository.NewPostgreSQLTemplateRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProcessorUseCase creates the queue processor with all its dependencies.
func (c *Container) initProcessorUseCase() (deliveryUseCase.ProcessorUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for processor use case: %w", err)
	}

	queueRepository, err := c.QueueRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get queue repository for processor use case: %w", err)
	}

	templateRepository, err := c.TemplateRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get template repository for processor use case: %w", err)
	}

	codec, err := c.Codec()
	if err != nil {
		return nil, fmt.Errorf("failed to get codec for processor use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for processor use case: %w", err)
	}

	useCaseConfig := deliveryUseCase.Config{
		BatchSize: c.config.WorkerBatchSize,
		ClaimTTL:  c.config.WorkerClaimTTL,
	}

	baseUseCase := deliveryUseCase.NewProcessorUseCase(
		useCaseConfig,
		txManager,
		queueRepository,
		templateRepository,
		codec,
		deliveryService.NewMessageBuilder(deliveryService.NewSurveyLinkResolver(c.config.SurveyBaseURL)),
		c.Mailer(),
		auditLogUseCase,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for processor use case: %w", err)
		}
		return deliveryUseCase.NewProcessorUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initInterceptUseCase creates the intercept with all its dependencies.
func (c *Container) initInterceptUseCase() (deliveryUseCase.InterceptUseCase, error) {
	codec, err := c.Codec()
	if err != nil {
		return nil, fmt.Errorf("failed to get codec for intercept use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for intercept use case: %w", err)
	}

	baseUseCase := deliveryUseCase.NewInterceptUseCase(codec, c.Mailer(), auditLogUseCase, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for intercept use case: %w", err)
		}
		return deliveryUseCase.NewInterceptUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initInterceptHandler creates the intercept HTTP handler with all its dependencies.
func (c *Container) initInterceptHandler() (*deliveryHTTP.InterceptHandler, error) {
	useCase, err := c.InterceptUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get intercept use case for intercept handler: %w", err)
	}

	return deliveryHTTP.NewInterceptHandler(useCase, c.Logger()), nil
}

// initWorker creates the worker around the (possibly decorated) processor.
func (c *Container) initWorker() (*deliveryUseCase.Worker, error) {
	processor, err := c.ProcessorUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get processor use case for worker: %w", err)
	}

	return deliveryUseCase.NewWorker(processor, c.config.WorkerInterval, c.Logger()), nil
}
