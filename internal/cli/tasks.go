package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/pablasso/tasktracker/internal/store"
	"github.com/pablasso/tasktracker/internal/task"
	"github.com/spf13/cobra"
)

func newAddCmd(s *session) *cobra.Command {
	var description, dueDate, priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := task.ParsePriority(priority)
			if err != nil {
				return err
			}
			t, err := s.app.Store.Add(args[0], description, dueDate, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", t.ID, t.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date, e.g. 2024-03-01")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(task.PriorityHigh), "Priority: High|Medium|Low")
	return cmd
}

func newListCmd(s *session) *cobra.Command {
	var sortKey, status, priority string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in stored order. --sort reorders the stored sequence before
listing; --status and --priority only filter what is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuery(status, priority)
			if err != nil {
				return err
			}
			if sortKey != "" {
				key, err := store.ParseSortKey(sortKey)
				if err != nil {
					return err
				}
				if err := s.app.Store.Sort(key); err != nil {
					return err
				}
			}

			tasks := s.app.Store.Query(q)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(tasks)
			}
			return printTasks(cmd, tasks)
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort by dueDate|priority|title before listing")
	cmd.Flags().StringVar(&status, "status", store.FilterAll, "Filter by status: all|pending|completed")
	cmd.Flags().StringVar(&priority, "priority", store.FilterAll, "Filter by priority: all|High|Medium|Low")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tasks as JSON")
	return cmd
}

func parseQuery(status, priority string) (store.Query, error) {
	var q store.Query
	if status != "" && status != store.FilterAll {
		st, err := task.ParseStatus(status)
		if err != nil {
			return q, err
		}
		q.Status = st
	}
	if priority != "" && priority != store.FilterAll {
		p, err := task.ParsePriority(priority)
		if err != nil {
			return q, err
		}
		q.Priority = p
	}
	return q, nil
}

func printTasks(cmd *cobra.Command, tasks []task.Task) error {
	out := cmd.OutOrStdout()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tDUE\tTITLE\tDESCRIPTION")
	for _, t := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Status,
			t.Priority,
			t.DueDate,
			t.Title,
			t.Description,
		)
	}
	return w.Flush()
}

func newToggleCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task completed, or pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !s.exists(cmd, id) {
				return nil
			}
			if err := s.app.Store.ToggleCompletion(id); err != nil {
				return err
			}
			t, _ := s.app.Store.Get(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d is now %s\n", id, t.Status)
			return nil
		},
	}
}

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !s.exists(cmd, id) {
				return nil
			}
			if err := s.app.Store.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
			return nil
		},
	}
}

func newEditCmd(s *session) *cobra.Command {
	var title, description, dueDate, priority string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the fields of a task",
		Long:  `Change the fields of a task. Fields without a flag keep their value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("due") && !flags.Changed("priority") {
				return fmt.Errorf("nothing to change: pass --title, --description, --due or --priority")
			}
			if !s.exists(cmd, id) {
				return nil
			}
			t, _ := s.app.Store.Get(id)
			if flags.Changed("title") {
				t.Title = title
			}
			if flags.Changed("description") {
				t.Description = description
			}
			if flags.Changed("due") {
				t.DueDate = dueDate
			}
			if flags.Changed("priority") {
				if t.Priority, err = task.ParsePriority(priority); err != nil {
					return err
				}
			}

			if err := s.app.Store.Edit(id, t.Title, t.Description, t.DueDate, t.Priority); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVar(&dueDate, "due", "", "New due date")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority: High|Medium|Low")
	return cmd
}

func newSortCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:       "sort <dueDate|priority|title>",
		Short:     "Reorder the stored tasks",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(store.SortByDueDate), string(store.SortByPriority), string(store.SortByTitle)},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := store.ParseSortKey(args[0])
			if err != nil {
				return err
			}
			if err := s.app.Store.Sort(key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sorted %d tasks by %s\n", s.app.Store.Len(), key)
			return nil
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// exists reports whether a task with id is stored. Unknown ids are a
// no-op, so a notice is printed instead of failing.
func (s *session) exists(cmd *cobra.Command, id int64) bool {
	if _, ok := s.app.Store.Get(id); ok {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "No task %d\n", id)
	return false
}
