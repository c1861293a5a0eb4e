// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/baton-ci/baton/ent/auditevent"
	"github.com/baton-ci/baton/ent/balancingrule"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditeventFields := schema.AuditEvent{}.Fields()
	_ = auditeventFields
	// auditeventDescCreatedAt is the schema descriptor for created_at field.
	auditeventDescCreatedAt := auditeventFields[3].Descriptor()
	// auditevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditevent.DefaultCreatedAt = auditeventDescCreatedAt.Default.(func() time.Time)
	balancingruleFields := schema.BalancingRule{}.Fields()
	_ = balancingruleFields
	// balancingruleDescActive is the schema descriptor for active field.
	balancingruleDescActive := balancingruleFields[1].Descriptor()
	// balancingrule.DefaultActive holds the default value on creation for the active field.
	balancingrule.DefaultActive = balancingruleDescActive.Default.(bool)
	// balancingruleDescPriority is the schema descriptor for priority field.
	balancingruleDescPriority := balancingruleFields[2].Descriptor()
	// balancingrule.DefaultPriority holds the default value on creation for the priority field.
	balancingrule.DefaultPriority = balancingruleDescPriority.Default.(int)
	// balancingruleDescCursor is the schema descriptor for cursor field.
	balancingruleDescCursor := balancingruleFields[8].Descriptor()
	// balancingrule.DefaultCursor holds the default value on creation for the cursor field.
	balancingrule.DefaultCursor = balancingruleDescCursor.Default.(int)
	// balancingruleDescCreatedAt is the schema descriptor for created_at field.
	balancingruleDescCreatedAt := balancingruleFields[9].Descriptor()
	// balancingrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	balancingrule.DefaultCreatedAt = balancingruleDescCreatedAt.Default.(func() time.Time)
	// balancingruleDescUpdatedAt is the schema descriptor for updated_at field.
	balancingruleDescUpdatedAt := balancingruleFields[10].Descriptor()
	// balancingrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	balancingrule.DefaultUpdatedAt = balancingruleDescUpdatedAt.Default.(func() time.Time)
	// balancingrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	balancingrule.UpdateDefaultUpdatedAt = balancingruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescPriority is the schema descriptor for priority field.
	executionDescPriority := executionFields[6].Descriptor()
	// execution.DefaultPriority holds the default value on creation for the priority field.
	execution.DefaultPriority = executionDescPriority.Default.(int)
	// executionDescTotalShards is the schema descriptor for total_shards field.
	executionDescTotalShards := executionFields[13].Descriptor()
	// execution.DefaultTotalShards holds the default value on creation for the total_shards field.
	execution.DefaultTotalShards = executionDescTotalShards.Default.(int)
	// execution.TotalShardsValidator is a validator for the "total_shards" field. It is called by the builders before save.
	execution.TotalShardsValidator = executionDescTotalShards.Validators[0].(func(int) error)
	// executionDescCreatedAt is the schema descriptor for created_at field.
	executionDescCreatedAt := executionFields[19].Descriptor()
	// execution.DefaultCreatedAt holds the default value on creation for the created_at field.
	execution.DefaultCreatedAt = executionDescCreatedAt.Default.(func() time.Time)
	healthsampleFields := schema.HealthSample{}.Fields()
	_ = healthsampleFields
	// healthsampleDescCheckedAt is the schema descriptor for checked_at field.
	healthsampleDescCheckedAt := healthsampleFields[4].Descriptor()
	// healthsample.DefaultCheckedAt holds the default value on creation for the checked_at field.
	healthsample.DefaultCheckedAt = healthsampleDescCheckedAt.Default.(func() time.Time)
	resourceallocationFields := schema.ResourceAllocation{}.Fields()
	_ = resourceallocationFields
	// resourceallocationDescCPUAllocated is the schema descriptor for cpu_allocated field.
	resourceallocationDescCPUAllocated := resourceallocationFields[2].Descriptor()
	// resourceallocation.DefaultCPUAllocated holds the default value on creation for the cpu_allocated field.
	resourceallocation.DefaultCPUAllocated = resourceallocationDescCPUAllocated.Default.(float64)
	// resourceallocationDescMemoryAllocated is the schema descriptor for memory_allocated field.
	resourceallocationDescMemoryAllocated := resourceallocationFields[3].Descriptor()
	// resourceallocation.DefaultMemoryAllocated holds the default value on creation for the memory_allocated field.
	resourceallocation.DefaultMemoryAllocated = resourceallocationDescMemoryAllocated.Default.(float64)
	// resourceallocationDescAllocatedAt is the schema descriptor for allocated_at field.
	resourceallocationDescAllocatedAt := resourceallocationFields[5].Descriptor()
	// resourceallocation.DefaultAllocatedAt holds the default value on creation for the allocated_at field.
	resourceallocation.DefaultAllocatedAt = resourceallocationDescAllocatedAt.Default.(func() time.Time)
	runnerFields := schema.Runner{}.Fields()
	_ = runnerFields
	// runnerDescMaxConcurrentJobs is the schema descriptor for max_concurrent_jobs field.
	runnerDescMaxConcurrentJobs := runnerFields[6].Descriptor()
	// runner.DefaultMaxConcurrentJobs holds the default value on creation for the max_concurrent_jobs field.
	runner.DefaultMaxConcurrentJobs = runnerDescMaxConcurrentJobs.Default.(int)
	// runner.MaxConcurrentJobsValidator is a validator for the "max_concurrent_jobs" field. It is called by the builders before save.
	runner.MaxConcurrentJobsValidator = runnerDescMaxConcurrentJobs.Validators[0].(func(int) error)
	// runnerDescPriority is the schema descriptor for priority field.
	runnerDescPriority := runnerFields[7].Descriptor()
	// runner.DefaultPriority holds the default value on creation for the priority field.
	runner.DefaultPriority = runnerDescPriority.Default.(int)
	// runnerDescCreatedAt is the schema descriptor for created_at field.
	runnerDescCreatedAt := runnerFields[12].Descriptor()
	// runner.DefaultCreatedAt holds the default value on creation for the created_at field.
	runner.DefaultCreatedAt = runnerDescCreatedAt.Default.(func() time.Time)
	// runnerDescUpdatedAt is the schema descriptor for updated_at field.
	runnerDescUpdatedAt := runnerFields[13].Descriptor()
	// runner.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	runner.DefaultUpdatedAt = runnerDescUpdatedAt.Default.(func() time.Time)
	// runner.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	runner.UpdateDefaultUpdatedAt = runnerDescUpdatedAt.UpdateDefault.(func() time.Time)
}
