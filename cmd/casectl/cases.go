package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var platformNames = map[int]string{
	1: "android",
	2: "ios",
	3: "web",
	4: "pc",
	5: "harmony",
}

func platformName(p int) string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return strconv.Itoa(p)
}

func newCasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Manage test cases",
	}

	cmd.AddCommand(newCasesListCmd())
	cmd.AddCommand(newCasesGetCmd())
	cmd.AddCommand(newCasesStepsCmd())
	cmd.AddCommand(newCasesCopyCmd())
	cmd.AddCommand(newCasesDeleteCmd())
	return cmd
}

func newCasesListCmd() *cobra.Command {
	var projectID, platform, limit, offset int
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List test cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := getClient()

			query := url.Values{}
			if projectID > 0 {
				query.Set("projectId", strconv.Itoa(projectID))
			}
			if platform > 0 {
				query.Set("platform", strconv.Itoa(platform))
			}
			if name != "" {
				query.Set("name", name)
			}
			if limit > 0 {
				query.Set("limit", strconv.Itoa(limit))
			}
			if offset > 0 {
				query.Set("offset", strconv.Itoa(offset))
			}

			body, err := client.Get("/api/v1/test-cases", query)
			if err != nil {
				return err
			}

			if flagJSON {
				printRawJSON(body)
				return nil
			}

			var resp PaginatedResponse[TestCaseResponse]
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			headers := []string{"ID", "PROJECT", "PLATFORM", "NAME", "DESIGNER", "EDITED AT"}
			var rows [][]string
			for _, tc := range resp.Items {
				rows = append(rows, []string{
					strconv.FormatUint(uint64(tc.ID), 10),
					strconv.FormatUint(uint64(tc.ProjectID), 10),
					platformName(tc.Platform),
					truncate(tc.Name, 40),
					tc.Designer,
					tc.EditTime.Format("2006-01-02 15:04:05"),
				})
			}
			printTable(headers, rows)
			printMessage(fmt.Sprintf("\nShowing %d of %d test cases", len(resp.Items), resp.Total))
			return nil
		},
	}

	cmd.Flags().IntVar(&projectID, "project", 0, "Filter by project ID")
	cmd.Flags().IntVar(&platform, "platform", 0, "Filter by platform (1 android, 2 ios, 3 web, 4 pc, 5 harmony)")
	cmd.Flags().StringVar(&name, "name", "", "Filter by name substring")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset for pagination")
	return cmd
}

func newCasesGetCmd() *cobra.Command {
	var id uint

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a test case",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := getClient()

			body, err := client.Get(fmt.Sprintf("/api/v1/test-cases/%d", id), nil)
			if err != nil {
				return err
			}

			if flagJSON {
				printRawJSON(body)
				return nil
			}

			var tc TestCaseResponse
			if err := json.Unmarshal(body, &tc); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printMessage(fmt.Sprintf("ID:          %d", tc.ID))
			printMessage(fmt.Sprintf("Name:        %s", tc.Name))
			printMessage(fmt.Sprintf("Project:     %d", tc.ProjectID))
			printMessage(fmt.Sprintf("Platform:    %s", platformName(tc.Platform)))
			printMessage(fmt.Sprintf("Module:      %d", tc.ModuleID))
			printMessage(fmt.Sprintf("Version:     %s", tc.Version))
			printMessage(fmt.Sprintf("Designer:    %s", tc.Designer))
			printMessage(fmt.Sprintf("Description: %s", tc.Des))
			printMessage(fmt.Sprintf("Edited at:   %s", tc.EditTime.Format("2006-01-02 15:04:05")))
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Test case ID (required)")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newCasesStepsCmd() *cobra.Command {
	var id uint

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Show the run plan of a test case",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := getClient()

			body, err := client.Get(fmt.Sprintf("/api/v1/test-cases/%d/steps", id), nil)
			if err != nil {
				return err
			}

			if flagJSON {
				printRawJSON(body)
				return nil
			}

			var plan RunPlanResponse
			if err := json.Unmarshal(body, &plan); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printMessage(fmt.Sprintf("Platform: %s", platformName(plan.Platform)))

			headers := []string{"SORT", "ID", "TYPE", "CONTENT", "ELEMENTS"}
			var rows [][]string
			for _, es := range plan.Steps {
				rows = append(rows, stepRow(es, ""))
				for _, member := range es.PubSteps {
					rows = append(rows, stepRow(member, "  "))
				}
			}
			printTable(headers, rows)

			if len(plan.GlobalParams) > 0 {
				keys := make([]string, 0, len(plan.GlobalParams))
				for k := range plan.GlobalParams {
					keys = append(keys, k)
				}
				sort.Strings(keys)

				printMessage("\nGlobal parameters:")
				for _, k := range keys {
					printMessage(fmt.Sprintf("  %s = %s", k, plan.GlobalParams[k]))
				}
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Test case ID (required)")
	cmd.MarkFlagRequired("id")
	return cmd
}

func stepRow(es *ExecutableStepResponse, indent string) []string {
	names := make([]string, 0, len(es.Elements))
	for _, el := range es.Elements {
		names = append(names, el.EleName)
	}
	content := es.Step.Content
	if content == "" {
		content = es.Step.Text
	}
	return []string{
		indent + strconv.Itoa(es.Step.Sort),
		strconv.FormatUint(uint64(es.Step.ID), 10),
		es.Step.StepType,
		truncate(content, 40),
		strings.Join(names, ","),
	}
}

func newCasesCopyCmd() *cobra.Command {
	var id uint

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a test case with its steps and element bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := getClient()

			body, err := client.Post(fmt.Sprintf("/api/v1/test-cases/%d/copy", id), nil)
			if err != nil {
				return err
			}

			if flagJSON {
				printRawJSON(body)
				return nil
			}

			var tc TestCaseResponse
			if err := json.Unmarshal(body, &tc); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printMessage(fmt.Sprintf("Test case copied: %s (%d)", tc.Name, tc.ID))
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Test case ID (required)")
	cmd.MarkFlagRequired("id")
	return cmd
}

func newCasesDeleteCmd() *cobra.Command {
	var id, projectID uint
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a test case, or every test case of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (id == 0) == (projectID == 0) {
				return fmt.Errorf("exactly one of --id or --project is required")
			}

			prompt := fmt.Sprintf("Delete test case %d?", id)
			path := fmt.Sprintf("/api/v1/test-cases/%d", id)
			if projectID != 0 {
				prompt = fmt.Sprintf("Delete every test case of project %d?", projectID)
				path = fmt.Sprintf("/api/v1/projects/%d/test-cases", projectID)
			}

			if !confirmAction(prompt, yes) {
				printMessage("Aborted.")
				return nil
			}

			client := getClient()
			body, err := client.Delete(path)
			if err != nil {
				return err
			}

			if projectID != 0 {
				var resp DeleteResponse
				if err := json.Unmarshal(body, &resp); err != nil {
					return fmt.Errorf("failed to parse response: %w", err)
				}
				if !resp.Deleted {
					printMessage("Project had no test cases.")
					return nil
				}
			}

			printMessage("Deleted successfully.")
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Test case ID")
	cmd.Flags().UintVar(&projectID, "project", 0, "Project ID")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
