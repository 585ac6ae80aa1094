// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/openintent-io/openintent/ent/agent"
	"github.com/openintent-io/openintent/ent/attachment"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/credential"
	"github.com/openintent-io/openintent/ent/failurerecord"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
	"github.com/openintent-io/openintent/ent/lease"
	"github.com/openintent-io/openintent/ent/portfolio"
	"github.com/openintent-io/openintent/ent/portfoliomember"
	"github.com/openintent-io/openintent/ent/schema"
	"github.com/openintent-io/openintent/ent/tooldefinition"
	"github.com/openintent-io/openintent/ent/toolgrant"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[4].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescContentType is the schema descriptor for content_type field.
	attachmentDescContentType := attachmentFields[3].Descriptor()
	// attachment.DefaultContentType holds the default value on creation for the content_type field.
	attachment.DefaultContentType = attachmentDescContentType.Default.(string)
	// attachmentDescCreatedAt is the schema descriptor for created_at field.
	attachmentDescCreatedAt := attachmentFields[9].Descriptor()
	// attachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	attachment.DefaultCreatedAt = attachmentDescCreatedAt.Default.(func() time.Time)
	costentryFields := schema.CostEntry{}.Fields()
	_ = costentryFields
	// costentryDescCurrency is the schema descriptor for currency field.
	costentryDescCurrency := costentryFields[4].Descriptor()
	// costentry.DefaultCurrency holds the default value on creation for the currency field.
	costentry.DefaultCurrency = costentryDescCurrency.Default.(string)
	// costentryDescCreatedAt is the schema descriptor for created_at field.
	costentryDescCreatedAt := costentryFields[6].Descriptor()
	// costentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	costentry.DefaultCreatedAt = costentryDescCreatedAt.Default.(func() time.Time)
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescCreatedAt is the schema descriptor for created_at field.
	credentialDescCreatedAt := credentialFields[4].Descriptor()
	// credential.DefaultCreatedAt holds the default value on creation for the created_at field.
	credential.DefaultCreatedAt = credentialDescCreatedAt.Default.(func() time.Time)
	failurerecordFields := schema.FailureRecord{}.Fields()
	_ = failurerecordFields
	// failurerecordDescCreatedAt is the schema descriptor for created_at field.
	failurerecordDescCreatedAt := failurerecordFields[6].Descriptor()
	// failurerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	failurerecord.DefaultCreatedAt = failurerecordDescCreatedAt.Default.(func() time.Time)
	intentFields := schema.Intent{}.Fields()
	_ = intentFields
	// intentDescVersion is the schema descriptor for version field.
	intentDescVersion := intentFields[6].Descriptor()
	// intent.DefaultVersion holds the default value on creation for the version field.
	intent.DefaultVersion = intentDescVersion.Default.(int64)
	// intentDescAttemptCount is the schema descriptor for attempt_count field.
	intentDescAttemptCount := intentFields[11].Descriptor()
	// intent.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	intent.DefaultAttemptCount = intentDescAttemptCount.Default.(int)
	// intentDescCreatedAt is the schema descriptor for created_at field.
	intentDescCreatedAt := intentFields[14].Descriptor()
	// intent.DefaultCreatedAt holds the default value on creation for the created_at field.
	intent.DefaultCreatedAt = intentDescCreatedAt.Default.(func() time.Time)
	// intentDescUpdatedAt is the schema descriptor for updated_at field.
	intentDescUpdatedAt := intentFields[15].Descriptor()
	// intent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	intent.DefaultUpdatedAt = intentDescUpdatedAt.Default.(func() time.Time)
	// intent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	intent.UpdateDefaultUpdatedAt = intentDescUpdatedAt.UpdateDefault.(func() time.Time)
	intenteventFields := schema.IntentEvent{}.Fields()
	_ = intenteventFields
	// intenteventDescCreatedAt is the schema descriptor for created_at field.
	intenteventDescCreatedAt := intenteventFields[5].Descriptor()
	// intentevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	intentevent.DefaultCreatedAt = intenteventDescCreatedAt.Default.(func() time.Time)
	leaseFields := schema.Lease{}.Fields()
	_ = leaseFields
	// leaseDescAcquiredAt is the schema descriptor for acquired_at field.
	leaseDescAcquiredAt := leaseFields[5].Descriptor()
	// lease.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	lease.DefaultAcquiredAt = leaseDescAcquiredAt.Default.(func() time.Time)
	portfolioFields := schema.Portfolio{}.Fields()
	_ = portfolioFields
	// portfolioDescCreatedAt is the schema descriptor for created_at field.
	portfolioDescCreatedAt := portfolioFields[6].Descriptor()
	// portfolio.DefaultCreatedAt holds the default value on creation for the created_at field.
	portfolio.DefaultCreatedAt = portfolioDescCreatedAt.Default.(func() time.Time)
	// portfolioDescUpdatedAt is the schema descriptor for updated_at field.
	portfolioDescUpdatedAt := portfolioFields[7].Descriptor()
	// portfolio.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	portfolio.DefaultUpdatedAt = portfolioDescUpdatedAt.Default.(func() time.Time)
	// portfolio.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	portfolio.UpdateDefaultUpdatedAt = portfolioDescUpdatedAt.UpdateDefault.(func() time.Time)
	portfoliomemberFields := schema.PortfolioMember{}.Fields()
	_ = portfoliomemberFields
	// portfoliomemberDescPriority is the schema descriptor for priority field.
	portfoliomemberDescPriority := portfoliomemberFields[3].Descriptor()
	// portfoliomember.DefaultPriority holds the default value on creation for the priority field.
	portfoliomember.DefaultPriority = portfoliomemberDescPriority.Default.(int)
	// portfoliomemberDescAddedAt is the schema descriptor for added_at field.
	portfoliomemberDescAddedAt := portfoliomemberFields[4].Descriptor()
	// portfoliomember.DefaultAddedAt holds the default value on creation for the added_at field.
	portfoliomember.DefaultAddedAt = portfoliomemberDescAddedAt.Default.(func() time.Time)
	tooldefinitionFields := schema.ToolDefinition{}.Fields()
	_ = tooldefinitionFields
	// tooldefinitionDescCreatedAt is the schema descriptor for created_at field.
	tooldefinitionDescCreatedAt := tooldefinitionFields[4].Descriptor()
	// tooldefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	tooldefinition.DefaultCreatedAt = tooldefinitionDescCreatedAt.Default.(func() time.Time)
	// tooldefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	tooldefinitionDescUpdatedAt := tooldefinitionFields[5].Descriptor()
	// tooldefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tooldefinition.DefaultUpdatedAt = tooldefinitionDescUpdatedAt.Default.(func() time.Time)
	// tooldefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tooldefinition.UpdateDefaultUpdatedAt = tooldefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	toolgrantFields := schema.ToolGrant{}.Fields()
	_ = toolgrantFields
	// toolgrantDescRateLimit is the schema descriptor for rate_limit field.
	toolgrantDescRateLimit := toolgrantFields[5].Descriptor()
	// toolgrant.DefaultRateLimit holds the default value on creation for the rate_limit field.
	toolgrant.DefaultRateLimit = toolgrantDescRateLimit.Default.(int)
	// toolgrantDescRateWindowSeconds is the schema descriptor for rate_window_seconds field.
	toolgrantDescRateWindowSeconds := toolgrantFields[6].Descriptor()
	// toolgrant.DefaultRateWindowSeconds holds the default value on creation for the rate_window_seconds field.
	toolgrant.DefaultRateWindowSeconds = toolgrantDescRateWindowSeconds.Default.(int)
	// toolgrantDescCreatedAt is the schema descriptor for created_at field.
	toolgrantDescCreatedAt := toolgrantFields[8].Descriptor()
	// toolgrant.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolgrant.DefaultCreatedAt = toolgrantDescCreatedAt.Default.(func() time.Time)
}
