package i18n

// One table for both locales; pages are authored once and look strings up by
// key instead of being duplicated per language.
var messages = map[string]map[Locale]string{
	"nav.brand":    {English: "Khadamat", Persian: "خدمات"},
	"nav.home":     {English: "Home", Persian: "خانه"},
	"nav.services": {English: "Services", Persian: "سرویس‌ها"},
	"nav.companies": {
		English: "Companies", Persian: "شرکت‌ها",
	},
	"nav.invoices": {English: "Invoices", Persian: "فاکتورها"},
	"nav.login":    {English: "Login", Persian: "ورود"},
	"nav.register": {English: "Register", Persian: "ثبت‌نام"},

	"home.title":   {English: "Welcome", Persian: "خوش آمدید"},
	"home.lead":    {English: "Browse companies, request services and track your invoices.", Persian: "شرکت‌ها را ببینید، سرویس درخواست کنید و فاکتورهای خود را دنبال کنید."},
	"dashboard.title": {English: "Dashboard", Persian: "داشبورد"},
	"dashboard.lead":  {English: "You are signed in.", Persian: "شما وارد شده‌اید."},

	"companies.title": {English: "Companies", Persian: "شرکت‌ها"},
	"companies.none":  {English: "No companies found.", Persian: "شرکتی یافت نشد."},
	"companies.view":  {English: "View company", Persian: "مشاهده شرکت"},
	"company.not_found":  {English: "Company not found.", Persian: "شرکت یافت نشد."},
	"company.workdays":   {English: "Working days", Persian: "روزهای کاری"},
	"company.closed":     {English: "Closed", Persian: "تعطیل"},
	"company.open_now":   {English: "Open now", Persian: "اکنون باز است"},
	"company.features":   {English: "Features", Persian: "ویژگی‌ها"},
	"company.validation": {English: "Validation", Persian: "اعتبارسنجی"},
	"company.validated_by": {English: "Validated by", Persian: "تایید شده توسط"},
	"company.license":    {English: "Business license", Persian: "مجوز کسب‌وکار"},
	"company.no_license": {English: "No business license on file.", Persian: "مجوز کسب‌وکاری ثبت نشده است."},
	"company.no_banner":  {English: "No banner available.", Persian: "بنری موجود نیست."},
	"company.website":    {English: "Visit website", Persian: "مشاهده وب‌سایت"},
	"company.founded":    {English: "Founded", Persian: "تاسیس"},
	"company.contact":    {English: "Contact", Persian: "تماس"},

	"services.title": {English: "Services", Persian: "سرویس‌ها"},
	"services.none":  {English: "No services found.", Persian: "سرویسی یافت نشد."},
	"services.view":  {English: "View service", Persian: "مشاهده سرویس"},
	"service.not_found": {English: "Service not found.", Persian: "سرویس یافت نشد."},
	"service.provider":  {English: "Service provider", Persian: "ارائه‌دهنده سرویس"},
	"service.company":   {English: "Company", Persian: "شرکت"},
	"service.status":    {English: "Service status", Persian: "وضعیت سرویس"},
	"service.payment":   {English: "Payment status", Persian: "وضعیت پرداخت"},
	"service.started":   {English: "Started at", Persian: "شروع"},
	"service.finished":  {English: "Finished at", Persian: "پایان"},
	"service.score":     {English: "Overall score", Persian: "امتیاز کلی"},
	"service.no_score":  {English: "Not scored yet.", Persian: "هنوز امتیازی ثبت نشده است."},
	"service.invoiced":  {English: "Invoiced", Persian: "فاکتور شده"},
	"service.no_card":   {English: "No company card.", Persian: "کارت شرکتی موجود نیست."},

	"invoices.title": {English: "Invoices", Persian: "فاکتورها"},
	"invoices.none":  {English: "No invoices available.", Persian: "فاکتوری موجود نیست."},
	"invoices.view":  {English: "View invoice", Persian: "مشاهده فاکتور"},
	"invoice.not_found": {English: "Invoice not found.", Persian: "فاکتور یافت نشد."},
	"invoice.total":     {English: "Total amount", Persian: "مبلغ کل"},
	"invoice.deadline":  {English: "Deadline", Persian: "مهلت پرداخت"},
	"invoice.paid":      {English: "Paid", Persian: "پرداخت شده"},
	"invoice.unpaid":    {English: "Unpaid", Persian: "پرداخت نشده"},
	"invoice.items":     {English: "Items", Persian: "اقلام"},
	"invoice.no_items":  {English: "This invoice has no items.", Persian: "این فاکتور قلمی ندارد."},

	"request.title":        {English: "Request Service", Persian: "درخواست سرویس"},
	"request.recipient":    {English: "Recipient Address ID", Persian: "شناسه آدرس گیرنده"},
	"request.form_title":   {English: "Title", Persian: "عنوان"},
	"request.slug":         {English: "Slug", Persian: "نامک"},
	"request.descriptions": {English: "Descriptions", Persian: "توضیحات"},
	"request.submit":       {English: "Submit Request", Persian: "ارسال درخواست"},
	"request.success":      {English: "Your service request has been submitted successfully!", Persian: "درخواست سرویس شما با موفقیت ثبت شد!"},
	"request.missing":      {English: "All fields are required.", Persian: "تمام فیلدها الزامی هستند."},
	"request.failed":       {English: "Failed to submit service request.", Persian: "ارسال درخواست سرویس ناموفق بود."},

	"auth.phone":         {English: "Phone", Persian: "شماره تلفن"},
	"auth.password":      {English: "Password", Persian: "رمز عبور"},
	"auth.password_conf": {English: "Confirm password", Persian: "تکرار رمز عبور"},
	"auth.email":         {English: "Email", Persian: "ایمیل"},
	"auth.username":      {English: "Username", Persian: "نام کاربری"},
	"auth.user_type":     {English: "User type", Persian: "نوع کاربر"},
	"auth.full_name":     {English: "Full name", Persian: "نام کامل"},

	"auth.login.title":  {English: "Login", Persian: "ورود"},
	"auth.login.submit": {English: "Login", Persian: "ورود"},
	"auth.login.failed": {English: "Login failed!", Persian: "ورود ناموفق بود!"},
	"auth.login.otp_link": {English: "Login with a one-time code", Persian: "ورود با کد یکبارمصرف"},
	"auth.login.reset_link": {English: "Forgot your password?", Persian: "رمز عبور را فراموش کرده‌اید؟"},

	"auth.otp.request_title":  {English: "Request one-time code", Persian: "درخواست ورود با کد یکبارمصرف"},
	"auth.otp.request_submit": {English: "Send code", Persian: "ارسال کد"},
	"auth.otp.request_failed": {English: "One-time code request failed!", Persian: "درخواست کد یکبارمصرف ناموفق بود!"},
	"auth.otp.verify_title":   {English: "Enter OTP", Persian: "کد یکبارمصرف را وارد کنید"},
	"auth.otp.code_hint":      {English: "For testing, your OTP code is:", Persian: "برای آزمایش، کد یکبارمصرف شما:"},
	"auth.otp.submit":         {English: "Verify", Persian: "تایید"},
	"auth.otp.failed":         {English: "OTP verification failed!", Persian: "تایید کد یکبارمصرف ناموفق بود!"},

	"auth.register.title":  {English: "Register", Persian: "ثبت‌نام"},
	"auth.register.submit": {English: "Register", Persian: "ثبت‌نام"},
	"auth.register.failed": {English: "Registration failed!", Persian: "ثبت‌نام ناموفق بود!"},
	"auth.password_mismatch": {English: "Passwords do not match.", Persian: "رمزهای عبور مطابقت ندارند."},

	"auth.reset.title":        {English: "Reset password", Persian: "بازیابی رمز عبور"},
	"auth.reset.submit":       {English: "Send reset code", Persian: "ارسال کد بازیابی"},
	"auth.reset.failed":       {English: "Password reset request failed!", Persian: "درخواست بازیابی رمز عبور ناموفق بود!"},
	"auth.reset.verify_title": {English: "Choose a new password", Persian: "رمز عبور جدید را انتخاب کنید"},
	"auth.reset.code":         {English: "Reset code", Persian: "کد بازیابی"},

	"error.fetch":    {English: "Could not load data from the server.", Persian: "دریافت اطلاعات از سرور ممکن نشد."},
	"notfound.title": {English: "Not found", Persian: "یافت نشد"},

	"lang.en": {English: "English", Persian: "English"},
	"lang.fa": {English: "فارسی", Persian: "فارسی"},
}
