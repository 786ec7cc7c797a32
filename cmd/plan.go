package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vikaskrsingh/finai-mitra/internal/config"
	"github.com/vikaskrsingh/finai-mitra/internal/logger"
	"github.com/vikaskrsingh/finai-mitra/internal/prompt"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate personalized financial planning recommendations",
	Long: `Generate financial planning recommendations for a user profile.

The recommendation covers financial goals, investment options, risk appetite,
tax planning, insurance and an emergency fund, sized to the profile's income.
Unlike document processing, planning does not require a financial document.`,
	Example: `  # Recommendations for a salaried professional in India, in Hindi
  finai-mitra plan --age 35 --gender Female --occupation "Software Engineer" --income 45000 --country India --language hi

  # Recommendations in German
  finai-mitra plan --age 50 --occupation "Business Owner" --income 120000 --country Germany --language de`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().Int("age", 30, "Age of the user")
	planCmd.Flags().String("gender", "", "Gender of the user")
	planCmd.Flags().String("occupation", "", "Occupation of the user")
	planCmd.Flags().Int("income", 0, "Annual income in USD")
	planCmd.Flags().String("country", "India", "Country context for the recommendation")
	planCmd.Flags().String("language", "en", "Output language code (e.g. en, hi, de, ta)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("plan")

	age, _ := cmd.Flags().GetInt("age")
	gender, _ := cmd.Flags().GetString("gender")
	occupation, _ := cmd.Flags().GetString("occupation")
	income, _ := cmd.Flags().GetInt("income")
	country, _ := cmd.Flags().GetString("country")
	language, _ := cmd.Flags().GetString("language")

	if income <= 0 {
		return fmt.Errorf("--income must be a positive annual income in USD")
	}
	if age <= 0 {
		return fmt.Errorf("--age must be positive")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	orchestrator, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	profile := prompt.Profile{
		Age:             age,
		Gender:          gender,
		Occupation:      occupation,
		AnnualIncomeUSD: income,
	}

	log.Info().
		Int("age", age).
		Str("occupation", occupation).
		Str("income_category", profile.IncomeCategory()).
		Str("country", country).
		Str("language", language).
		Msg("Generating financial planning recommendations")

	recommendation, err := orchestrator.Recommend(ctx, profile, country, language)
	if err != nil {
		log.Error().Err(err).Msg("Recommendation generation failed")
		return fmt.Errorf("recommendation generation failed: %w", err)
	}

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(recommendation)
	fmt.Println(strings.Repeat("=", 80))
	return nil
}
