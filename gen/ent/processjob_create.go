// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/yeonjae-dev/ocrean/gen/ent/document"
	"github.com/yeonjae-dev/ocrean/gen/ent/processjob"
)

// ProcessJobCreate is the builder for creating a ProcessJob entity.
type ProcessJobCreate struct {
	config
	mutation *ProcessJobMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ProcessJobCreate) SetDocumentID(v uuid.UUID) *ProcessJobCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ProcessJobCreate) SetFormat(v string) *ProcessJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProcessJobCreate) SetStartedAt(v time.Time) *ProcessJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableStartedAt(v *time.Time) *ProcessJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ProcessJobCreate) SetFinishedAt(v time.Time) *ProcessJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableFinishedAt(v *time.Time) *ProcessJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessJobCreate) SetStatus(v string) *ProcessJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableStatus(v *string) *ProcessJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessJobCreate) SetErrorMessage(v string) *ProcessJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableErrorMessage(v *string) *ProcessJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *ProcessJobCreate) SetOcrText(v string) *ProcessJobCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableOcrText(v *string) *ProcessJobCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetOcrMethod sets the "ocr_method" field.
func (_c *ProcessJobCreate) SetOcrMethod(v string) *ProcessJobCreate {
	_c.mutation.SetOcrMethod(v)
	return _c
}

// SetNillableOcrMethod sets the "ocr_method" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableOcrMethod(v *string) *ProcessJobCreate {
	if v != nil {
		_c.SetOcrMethod(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ProcessJobCreate) SetLanguage(v string) *ProcessJobCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableLanguage(v *string) *ProcessJobCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetPages sets the "pages" field.
func (_c *ProcessJobCreate) SetPages(v int) *ProcessJobCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillablePages(v *int) *ProcessJobCreate {
	if v != nil {
		_c.SetPages(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ProcessJobCreate) SetConfidence(v float32) *ProcessJobCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableConfidence(v *float32) *ProcessJobCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSentenceCount sets the "sentence_count" field.
func (_c *ProcessJobCreate) SetSentenceCount(v int) *ProcessJobCreate {
	_c.mutation.SetSentenceCount(v)
	return _c
}

// SetNillableSentenceCount sets the "sentence_count" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableSentenceCount(v *int) *ProcessJobCreate {
	if v != nil {
		_c.SetSentenceCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessJobCreate) SetID(v uuid.UUID) *ProcessJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessJobCreate) SetNillableID(v *uuid.UUID) *ProcessJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ProcessJobCreate) SetDocument(v *Document) *ProcessJobCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ProcessJobMutation object of the builder.
func (_c *ProcessJobCreate) Mutation() *ProcessJobMutation {
	return _c.mutation
}

// Save creates the ProcessJob in the database.
func (_c *ProcessJobCreate) Save(ctx context.Context) (*ProcessJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessJobCreate) SaveX(ctx context.Context) *ProcessJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := processjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessJobCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ProcessJob.document_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ProcessJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := processjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ProcessJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ProcessJob.started_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ProcessJob.document"`)}
	}
	return nil
}

func (_c *ProcessJobCreate) sqlSave(ctx context.Context) (*ProcessJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessJobCreate) createSpec() (*ProcessJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processjob.Table, sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(processjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(processjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(processjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processjob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(processjob.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.OcrMethod(); ok {
		_spec.SetField(processjob.FieldOcrMethod, field.TypeString, value)
		_node.OcrMethod = &value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(processjob.FieldLanguage, field.TypeString, value)
		_node.Language = &value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(processjob.FieldPages, field.TypeInt, value)
		_node.Pages = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(processjob.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.SentenceCount(); ok {
		_spec.SetField(processjob.FieldSentenceCount, field.TypeInt, value)
		_node.SentenceCount = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processjob.DocumentTable,
			Columns: []string{processjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessJobCreateBulk is the builder for creating many ProcessJob entities in bulk.
type ProcessJobCreateBulk struct {
	config
	err      error
	builders []*ProcessJobCreate
}

// Save creates the ProcessJob entities in the database.
func (_c *ProcessJobCreateBulk) Save(ctx context.Context) ([]*ProcessJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProcessJobCreateBulk) SaveX(ctx context.Context) []*ProcessJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
