package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.client.Register(ctx, name, email, password); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Registered! You can now log in.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Success!")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.client.Me(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s <%s>", user.ID, user.Name, user.Email))
	return nil
}

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Task title", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	description, err := GetMultiline(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	task, err := a.client.CreateTask(ctx, title, description)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Added task #%d", task.ID))
	return nil
}

func (a *App) List(ctx context.Context) error {
	tasks, err := a.client.ListTasks(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(tasks) == 0 {
		printlnFn("No tasks yet.")
		return nil
	}

	for _, t := range tasks {
		printlnFn(formatTask(t))
	}
	return nil
}

func (a *App) Show(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	task, err := a.client.GetTask(ctx, id)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(formatTask(*task))
	if task.Description != nil && *task.Description != "" {
		printlnFn(*task.Description)
	}
	return nil
}

func (a *App) Done(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	task, err := a.client.CompleteTask(ctx, id)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(formatTask(*task))
	return nil
}

func (a *App) Remove(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.client.DeleteTask(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Deleted task #%d", id))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	printlnFn("Logged out.")
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("expected a task id, got %q", arg)
	}
	return id, nil
}

func formatTask(t Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] #%d %s", mark, t.ID, t.Title)
}
