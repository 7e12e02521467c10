package app

import (
	"fmt"

	recordHTTP "github.com/allisson/sealedfields/internal/record/http"
	recordRepository "github.com/allisson/sealedfields/internal/record/repository"
	recordService "github.com/allisson/sealedfields/internal/record/service"
	recordUseCase "github.com/allisson/sealedfields/internal/record/usecase"
)

// FieldMetadataRepository returns the field metadata repository based on database driver.
func (c *Container) FieldMetadataRepository() (recordUseCase.FieldMetadataRepository, error) {
	var err error
	c.fieldMetadataRepositoryInit.Do(func() {
		c.fieldMetadataRepository, err = c.initFieldMetadataRepository()
		if err != nil {
			c.initErrors["fieldMetadataRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldMetadataRepository"]; exists {
		return nil, storedErr
	}
	return c.fieldMetadataRepository, nil
}

// RecordRepository returns the record repository based on database driver.
func (c *Container) RecordRepository() (recordUseCase.RecordRepository, error) {
	var err error
	c.recordRepositoryInit.Do(func() {
		c.recordRepository, err = c.initRecordRepository()
		if err != nil {
			c.initErrors["recordRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recordRepository"]; exists {
		return nil, storedErr
	}
	return c.recordRepository, nil
}

// ReentrancyGuard returns the process-wide guard shared by every encryptor.
func (c *Container) ReentrancyGuard() *recordService.ReentrancyGuard {
	c.reentrancyGuardInit.Do(func() {
		c.reentrancyGuard = recordService.NewReentrancyGuard()
	})
	return c.reentrancyGuard
}

// RecordUseCase returns the record use case.
func (c *Container) RecordUseCase() (recordUseCase.RecordUseCase, error) {
	var err error
	c.recordUseCaseInit.Do(func() {
		c.recordUseCase, err = c.initRecordUseCase()
		if err != nil {
			c.initErrors["recordUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recordUseCase"]; exists {
		return nil, storedErr
	}
	return c.recordUseCase, nil
}

// RecordHandler returns the record HTTP handler.
func (c *Container) RecordHandler() (*recordHTTP.RecordHandler, error) {
	var err error
	c.recordHandlerInit.Do(func() {
		c.recordHandler, err = c.initRecordHandler()
		if err != nil {
			c.initErrors["recordHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recordHandler"]; exists {
		return nil, storedErr
	}
	return c.recordHandler, nil
}

// initFieldMetadataRepository creates the field metadata repository for the configured driver.
func (c *Container) initFieldMetadataRepository() (recordUseCase.FieldMetadataRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for field metadata repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return recordRepository.NewMySQLFieldMetadataRepository(db), nil
	case "postgres":
		return recordRepository.NewPostgreSQLFieldMetadataRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRecordRepository creates the record repository for the configured driver.
func (c *Container) initRecordRepository() (recordUseCase.RecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for record repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return recordRepository.NewMySQLRecordRepository(db), nil
	case "postgres":
		return recordRepository.NewPostgreSQLRecordRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRecordUseCase creates the record use case with all its dependencies.
func (c *Container) initRecordUseCase() (recordUseCase.RecordUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for record use case: %w", err)
	}

	fieldMetadataRepository, err := c.FieldMetadataRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get field metadata repository for record use case: %w", err)
	}

	recordRepository, err := c.RecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get record repository for record use case: %w", err)
	}

	codec, err := c.Codec()
	if err != nil {
		return nil, fmt.Errorf("failed to get codec for record use case: %w", err)
	}

	auditLogUseCase, err := c.AuditLogUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log use case for record use case: %w", err)
	}

	baseUseCase := recordUseCase.NewRecordUseCase(
		txManager,
		fieldMetadataRepository,
		recordRepository,
		codec,
		c.ReentrancyGuard(),
		recordService.NewTagScanner(c.config.EncryptionTag),
		recordService.NewMasker(c.config.MaskToken),
		auditLogUseCase,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for record use case: %w", err)
		}
		return recordUseCase.NewRecordUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initRecordHandler creates the record HTTP handler with all its dependencies.
func (c *Container) initRecordHandler() (*recordHTTP.RecordHandler, error) {
	useCase, err := c.RecordUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get record use case for record handler: %w", err)
	}

	return recordHTTP.NewRecordHandler(useCase, c.Logger()), nil
}
