package command

import (
	"fmt"
	"time"

	"intrack/internal/model"
)

// Result is what the UI shows after a command ran
type Result struct {
	Feedback string
	Exit     bool
}

type Command interface {
	Execute(m *model.ModelManager) (Result, error)
}

func atIndex(m *model.ModelManager, idx int) (model.Internship, error) {
	i, ok := m.FilteredInternshipList().Get(idx - 1)
	if !ok {
		return model.Internship{}, fmt.Errorf("%w: no internship at index %d", ErrInvalidFormat, idx)
	}
	return i, nil
}

type AddCommand struct {
	Internship model.Internship
}

func (c *AddCommand) Execute(m *model.ModelManager) (Result, error) {
	if err := m.CreateInternship(c.Internship); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "New internship added: " + c.Internship.String()}, nil
}

type DeleteCommand struct {
	Index int
}

func (c *DeleteCommand) Execute(m *model.ModelManager) (Result, error) {
	target, err := atIndex(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteInternship(target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Deleted internship: " + target.String()}, nil
}

// EditDescriptor holds the fields to change; nil means keep the current value
type EditDescriptor struct {
	Company  *string
	Role     *string
	Status   *model.Status
	Location *string
	Deadline *time.Time
	Remark   *string
}

func (e EditDescriptor) applyTo(i model.Internship) model.Internship {
	if e.Company != nil {
		i = i.WithCompany(*e.Company)
	}
	if e.Role != nil {
		i = i.WithRole(*e.Role)
	}
	if e.Status != nil {
		i = i.WithStatus(*e.Status)
	}
	if e.Location != nil {
		i = i.WithLocation(*e.Location)
	}
	if e.Deadline != nil {
		i = i.WithDeadline(*e.Deadline)
	}
	if e.Remark != nil {
		i = i.WithRemark(*e.Remark)
	}
	return i
}

type EditCommand struct {
	Index int
	Edit  EditDescriptor
}

func (c *EditCommand) Execute(m *model.ModelManager) (Result, error) {
	target, err := atIndex(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Edit.applyTo(target)
	if err := edited.Validate(); err != nil {
		return Result{}, err
	}
	if err := m.SetInternship(target, edited); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Edited internship: " + edited.String()}, nil
}

type FilterCommand struct {
	Parameter string
	Value     string
	Predicate model.Predicate
}

func (c *FilterCommand) Execute(m *model.ModelManager) (Result, error) {
	if err := ApplyFilter(m, c.Parameter, c.Value, c.Predicate); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("%d internships listed", m.FilteredInternshipList().Len())}, nil
}

// ApplyFilter records the filter description, then applies the predicate
func ApplyFilter(m *model.ModelManager, parameter, value string, p model.Predicate) error {
	if p == nil {
		return fmt.Errorf("%w: nil predicate", model.ErrInvalidArgument)
	}
	m.SetFilterParameter(parameter)
	m.SetFilterValue(value)
	return m.UpdateFilteredInternshipList(p)
}

type SortCommand struct {
	Prefix     string
	Order      model.SortOrder
	Comparator model.Comparator
}

func (c *SortCommand) Execute(m *model.ModelManager) (Result, error) {
	if err := ApplySort(m, c.Prefix, c.Order, c.Comparator); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Sorted internships by %s %s", c.Prefix, c.Order)}, nil
}

// ApplySort makes cmp the active comparator, records its description, then sorts
func ApplySort(m *model.ModelManager, prefix string, order model.SortOrder, cmp model.Comparator) error {
	if err := m.UpdateSortComparator(cmp); err != nil {
		return err
	}
	m.SetComparatorPrefix(prefix)
	m.SetComparatorOrder(order)
	return m.SortInternships(cmp)
}

// RestoreView rebuilds a saved sort and filter. Blank metadata leaves the defaults. Nothing is
// applied unless both parts are usable.
func RestoreView(m *model.ModelManager, sortPrefix string, order model.SortOrder, filterParameter, filterValue string) error {
	var cmp model.Comparator
	if sortPrefix != "" {
		c, err := model.ComparatorFor(sortPrefix, order)
		if err != nil {
			return err
		}
		cmp = c
	}
	var pred model.Predicate
	if filterParameter != "" && filterParameter != model.DefaultFilterMetadata {
		p, err := model.PredicateFor(filterParameter, filterValue)
		if err != nil {
			return err
		}
		pred = p
	}

	if cmp != nil {
		if err := ApplySort(m, sortPrefix, order, cmp); err != nil {
			return err
		}
	}
	if pred != nil {
		return ApplyFilter(m, filterParameter, filterValue, pred)
	}
	return nil
}

type ListCommand struct{}

func (c *ListCommand) Execute(m *model.ModelManager) (Result, error) {
	if err := ApplyFilter(m, model.DefaultFilterMetadata, model.DefaultFilterMetadata, model.ShowAll); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Listed all internships"}, nil
}

type ClearCommand struct{}

func (c *ClearCommand) Execute(m *model.ModelManager) (Result, error) {
	if err := m.SetInternshipBook(model.NewInternshipBook()); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Internship list has been cleared"}, nil
}

type ExitCommand struct{}

func (c *ExitCommand) Execute(m *model.ModelManager) (Result, error) {
	return Result{Feedback: "Exiting", Exit: true}, nil
}
